package editor

// EventKind is a kind of pointer event.
type EventKind int

const (
	// EventPress is a primary press (a full click): drops the dragged point
	// or creates a new one.
	EventPress EventKind = iota
	// EventPressStart is a button-down: picks up the highlighted point.
	EventPressStart
	// EventMove is a pointer move.
	EventMove
	// EventRemove is the secondary (context) action.
	EventRemove
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventPressStart:
		return "press-start"
	case EventMove:
		return "move"
	case EventRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event is a pointer event in canvas coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}
