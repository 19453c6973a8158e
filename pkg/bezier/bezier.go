// Package bezier evaluates n-point Bezier curves in the explicit Bernstein form.
package bezier

import (
	"iter"
	"math"
)

// SampleCount is how many samples a curve is flattened into.
// t sweeps [0, 1) in steps of 1/SampleCount, so t=1 is never sampled.
const SampleCount = 100

// Weighting selects the coefficient applied to each Bernstein term.
type Weighting int

const (
	// WeightBinomial uses the true binomial coefficient C(n, i).
	WeightBinomial Weighting = iota
	// WeightDegree uses 1 for the end terms and n for every middle term.
	// It matches WeightBinomial for up to 4 control points only.
	WeightDegree
)

func (w Weighting) String() string {
	switch w {
	case WeightBinomial:
		return "binomial"
	case WeightDegree:
		return "degree"
	default:
		return "unknown"
	}
}

// coefficient returns the weight of term i for a curve of degree n.
func (w Weighting) coefficient(n, i int) float64 {
	if w == WeightDegree && i > 0 && i < n {
		return float64(n)
	}

	return Binomial(n, i)
}

// Binomial returns n choose k. It returns 0 for k outside [0, n].
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}

	return math.Round(result)
}

// At evaluates the curve defined by points at t.
// points must not be empty.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func At(points []Point, t float64, w Weighting) Point {
	var result Point

	n := len(points) - 1
	for i, p := range points {
		d := w.coefficient(n, i) *
			math.Pow(1-t, float64(n-i)) *
			math.Pow(t, float64(i))
		result = result.Add(p.Mul(d))
	}

	return result
}

// Samples lazily yields the curve samples for t = 0, 0.01, ..., 0.99.
// Nothing is yielded for an empty input.
func Samples(points []Point, w Weighting) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(points) == 0 {
			return
		}

		for i := 0; i < SampleCount; i++ {
			if !yield(At(points, float64(i)/SampleCount, w)) {
				return
			}
		}
	}
}

// Evaluate returns all samples of the curve.
func Evaluate(points []Point, w Weighting) []Point {
	result := make([]Point, 0, SampleCount)
	for p := range Samples(points, w) {
		result = append(result, p)
	}

	return result
}

// Segments yields each pair of adjacent samples, i.e. the polyline
// approximating the curve.
func Segments(points []Point, w Weighting) iter.Seq2[Point, Point] {
	return func(yield func(Point, Point) bool) {
		first := true
		var prev Point
		for p := range Samples(points, w) {
			if !first && !yield(prev, p) {
				return
			}

			first = false
			prev = p
		}
	}
}
