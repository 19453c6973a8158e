package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gucio321/bezpad/pkg/bezier"
	"github.com/gucio321/bezpad/pkg/editor"
	"github.com/gucio321/bezpad/pkg/render"
)

var (
	_ render.Surface = &canvas{}
	_ editor.Cursor  = &canvas{}
)

// canvas draws on an offscreen ebiten image.
type canvas struct {
	img         *ebiten.Image
	face        text.Face
	strokeWidth float32
	strokeColor color.Color
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		img:         ebiten.NewImage(w, h),
		face:        text.NewGoXFace(basicfont.Face7x13),
		strokeWidth: render.StrokeWidth,
		strokeColor: render.StrokeColor,
	}
}

func (c *canvas) Clear() {
	c.img.Fill(render.BackgroundColor)
}

func (c *canvas) FillSquare(x, y, side float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(side), float32(side), clr, false)
}

// DrawText draws label with its bottom-left corner at (x, y).
func (c *canvas) DrawText(label string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(render.PointColor)
	op.SecondaryAlign = text.AlignEnd
	text.Draw(c.img, label, c.face, op)
}

func (c *canvas) StrokeLine(p0, p1 bezier.Point) {
	vector.StrokeLine(c.img,
		float32(p0.X), float32(p0.Y),
		float32(p1.X), float32(p1.Y),
		c.strokeWidth, c.strokeColor, true)
}

func (c *canvas) SetCursor(shape editor.CursorShape) {
	switch shape {
	case editor.CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
