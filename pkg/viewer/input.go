package viewer

import (
	"github.com/gucio321/bezpad/pkg/editor"
)

// inputState is a snapshot of the mouse taken once per tick.
type inputState struct {
	x, y        int
	left, right bool
}

// events translates the change between two snapshots into editor events.
// Order: move, press-start (left down), press (left up, a click), remove (right down).
func events(prev, cur inputState) []editor.Event {
	var result []editor.Event

	x, y := float64(cur.x), float64(cur.y)

	if cur.x != prev.x || cur.y != prev.y {
		result = append(result, editor.Event{Kind: editor.EventMove, X: x, Y: y})
	}

	if cur.left && !prev.left {
		result = append(result, editor.Event{Kind: editor.EventPressStart, X: x, Y: y})
	}

	if !cur.left && prev.left {
		result = append(result, editor.Event{Kind: editor.EventPress, X: x, Y: y})
	}

	if cur.right && !prev.right {
		result = append(result, editor.Event{Kind: editor.EventRemove, X: x, Y: y})
	}

	return result
}
