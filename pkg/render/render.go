// Package render redraws the editor state on a Surface once per tick.
package render

import (
	"image/color"
	"strconv"
	"time"

	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/bezpad/pkg/bezier"
	"github.com/gucio321/bezpad/pkg/editor"
)

// TickPeriod is the period of the render loop.
const TickPeriod = 16 * time.Millisecond

const (
	// LabelOffset is how far above a point its index label is drawn.
	LabelOffset = 12
	// StrokeWidth is the width of the curve polyline.
	StrokeWidth = 5
)

var (
	BackgroundColor  = colornames.White
	PointColor       = colornames.Black
	HighlightedColor = colornames.Red
	StrokeColor      = colornames.Blue
)

// Surface is a drawing area in canvas coordinates.
type Surface interface {
	// Clear erases the whole drawing area.
	Clear()
	// FillSquare draws an opaque square with its top-left corner at (x, y).
	FillSquare(x, y, side float64, clr color.Color)
	// DrawText draws a short label at (x, y).
	DrawText(label string, x, y float64)
	// StrokeLine draws a segment with the surface's fixed stroke.
	StrokeLine(p0, p1 bezier.Point)
}

// Loop redraws a Session on every Tick.
type Loop struct {
	session   *editor.Session
	weighting bezier.Weighting
	frames    uint64
}

// NewLoop creates a render loop for session.
func NewLoop(session *editor.Session, weighting bezier.Weighting) *Loop {
	return &Loop{
		session:   session,
		weighting: weighting,
	}
}

// Frames returns number of ticks run so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Tick redraws everything from scratch: clears s, draws the points with
// their 1-based labels and then the curve through them.
func (l *Loop) Tick(s Surface) {
	l.frames++

	// 1.0: clear
	s.Clear()

	// 2.0: points
	points := l.session.Points()
	for i, p := range points {
		s.FillSquare(p.X, p.Y, editor.HitBoxSize, TagColor(p.Color))
		s.DrawText(strconv.Itoa(i+1), p.X, p.Y-LabelOffset)
	}

	// 3.0: curve
	if len(points) == 0 {
		return
	}

	for p0, p1 := range bezier.Segments(l.session.Curve(), l.weighting) {
		s.StrokeLine(p0, p1)
	}

	if l.frames%uint64(time.Second/TickPeriod) == 0 {
		glg.Debugf("frame %d: %d points", l.frames, len(points))
	}
}

// TagColor returns fill color of a point with tag t.
func TagColor(t editor.Tag) color.Color {
	if t == editor.TagHighlighted {
		return HighlightedColor
	}

	return PointColor
}
