package bezier

// Point is a curve sample or control point position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar}
}
