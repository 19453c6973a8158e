package editor

import (
	"github.com/kpango/glg"
)

// HitBoxSize is the side of the square hit box anchored at a point's
// position and extending right and down.
const HitBoxSize = 20

// State is a logical state of the Controller.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// CursorShape is a pointer icon shown by the surface.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorPointer
)

// Cursor is implemented by surfaces able to change the pointer icon.
type Cursor interface {
	SetCursor(shape CursorShape)
}

// Controller translates pointer events into Session mutations.
// It is not safe for concurrent use: every handler must run to completion
// before the next handler or render tick starts.
type Controller struct {
	session *Session
	cursor  Cursor
}

// NewController creates a controller for session. cursor may be nil.
func NewController(session *Session, cursor Cursor) *Controller {
	return &Controller{
		session: session,
		cursor:  cursor,
	}
}

// Hit reports whether (x, y) lies strictly inside p's hit box.
func Hit(p *ControlPoint, x, y float64) bool {
	return x > p.X && x < p.X+HitBoxSize &&
		y > p.Y && y < p.Y+HitBoxSize
}

// State returns current logical state.
func (c *Controller) State() State {
	switch {
	case c.session.Active() != nil:
		return StateDragging
	case c.session.FirstHighlighted() != nil:
		return StateHovering
	default:
		return StateIdle
	}
}

// Handle dispatches e to the matching handler.
func (c *Controller) Handle(e Event) {
	switch e.Kind {
	case EventPress:
		c.Press(e.X, e.Y)
	case EventPressStart:
		c.PressStart(e.X, e.Y)
	case EventMove:
		c.Move(e.X, e.Y)
	case EventRemove:
		c.Remove(e.X, e.Y)
	default:
		glg.Warnf("Unknown event kind %v", e.Kind)
	}
}

// Press drops the dragged point if any. Otherwise it appends a new point at (x, y).
// New points are not selected.
func (c *Controller) Press(x, y float64) {
	if active := c.session.Active(); active != nil {
		glg.Debugf("Dropping point %d at %v", c.session.Index(active)+1, active)
		c.session.SetActive(nil)

		return
	}

	p := NewControlPoint(x, y)
	c.session.Add(p)
	glg.Debugf("Added point %d at %v", c.session.Len(), p)
}

// PressStart picks up the first highlighted point.
func (c *Controller) PressStart(_, _ float64) {
	p := c.session.FirstHighlighted()
	if p == nil {
		return
	}

	c.session.SetActive(p)
	glg.Debugf("Dragging point %d", c.session.Index(p)+1)
}

// Move drags the active point to (x, y) or, if nothing is dragged,
// recomputes hover state of every point.
// Every point is tested on its own, so overlapping points may all be highlighted.
func (c *Controller) Move(x, y float64) {
	if active := c.session.Active(); active != nil {
		active.X, active.Y = x, y
		return
	}

	for _, p := range c.session.Points() {
		if Hit(p, x, y) {
			p.Color = TagHighlighted
			continue
		}

		p.Color = TagDefault
	}

	if c.cursor == nil {
		return
	}

	shape := CursorDefault
	if c.session.FirstHighlighted() != nil {
		shape = CursorPointer
	}

	c.cursor.SetCursor(shape)
}

// Remove removes the dragged point or, if nothing is dragged,
// the first highlighted one. It is a no-op when there is neither.
func (c *Controller) Remove(_, _ float64) {
	target := c.session.Active()
	if target == nil {
		target = c.session.FirstHighlighted()
	}

	if target != nil {
		glg.Debugf("Removing point %d at %v", c.session.Index(target)+1, target)
	}

	c.session.Remove(target)
	c.session.SetActive(nil)
}
