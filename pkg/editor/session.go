// Package editor holds the interactive state of the curve editor:
// the ordered control points, the point being dragged and the controller
// translating pointer events into mutations of that state.
package editor

import (
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/bezpad/pkg/bezier"
)

// Tag is a visual state of a control point. It is derived from hover state.
type Tag int

const (
	TagDefault Tag = iota
	TagHighlighted
)

// ControlPoint is a user-placed point in canvas coordinates.
type ControlPoint struct {
	X, Y  float64
	Color Tag
}

// NewControlPoint creates a default-tagged point at (x, y).
func NewControlPoint(x, y float64) *ControlPoint {
	return &ControlPoint{X: x, Y: y}
}

func (p *ControlPoint) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Pos returns point's position as a curve point.
func (p *ControlPoint) Pos() bezier.Point {
	return bezier.Pt(p.X, p.Y)
}

// Session owns the control points and the active (dragged) point.
// It lives as long as the process. Points are stored by reference:
// mutating a point returned by Points or Active is visible everywhere.
type Session struct {
	points []*ControlPoint
	active *ControlPoint
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		points: make([]*ControlPoint, 0),
	}
}

// Add appends p to the collection.
func (s *Session) Add(p *ControlPoint) {
	s.points = append(s.points, p)
}

// Remove removes the first occurrence of p (by identity).
// If p was active, the active point is cleared.
// Removing nil or an absent point is a no-op.
func (s *Session) Remove(p *ControlPoint) {
	if p == nil {
		return
	}

	idx := s.Index(p)
	if idx < 0 {
		return
	}

	s.points = append(s.points[:idx], s.points[idx+1:]...)

	if s.active == p {
		s.active = nil
	}
}

// Points returns the live collection. It is not a copy.
func (s *Session) Points() []*ControlPoint {
	return s.points
}

// Len returns number of points in the collection.
func (s *Session) Len() int {
	return len(s.points)
}

// Index returns position of p in the collection or -1.
func (s *Session) Index(p *ControlPoint) int {
	for i, candidate := range s.points {
		if candidate == p {
			return i
		}
	}

	return -1
}

// Curve returns positions of all points in collection order.
func (s *Session) Curve() []bezier.Point {
	result := make([]bezier.Point, len(s.points))
	for i, p := range s.points {
		result[i] = p.Pos()
	}

	return result
}

// FirstHighlighted returns the first highlighted point in collection order or nil.
func (s *Session) FirstHighlighted() *ControlPoint {
	for _, p := range s.points {
		if p.Color == TagHighlighted {
			return p
		}
	}

	return nil
}

// SetActive sets the dragged point. nil clears it.
// p must be an element of the collection.
func (s *Session) SetActive(p *ControlPoint) {
	if p != nil && s.Index(p) < 0 {
		glg.Fatalf("SetActive called with %v, but it is not in the collection!", p)
	}

	s.active = p
}

// Active returns the dragged point or nil.
func (s *Session) Active() *ControlPoint {
	return s.active
}
