package core

// EventKind distinguishes the discrete input events the game consumes.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseDown
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseDown:
		return "MouseDown"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a platform-independent key code.
// The platform translates physical keys; the game only sees these codes.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow, A, H
	KeyRight       // Right arrow, D, L
	KeyFire        // Space
	KeyConfirm     // Enter
	KeyPlay        // P - start with the last difficulty
	KeyRestart     // R - back to the difficulty menu after game over
	KeyEasy        // 1
	KeyMedium      // 2
	KeyHard        // 3
	KeyQuit        // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyConfirm:
		return "Confirm"
	case KeyPlay:
		return "Play"
	case KeyRestart:
		return "Restart"
	case KeyEasy:
		return "Easy"
	case KeyMedium:
		return "Medium"
	case KeyHard:
		return "Hard"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event delivered to the game for one tick.
// X and Y are world coordinates and only meaningful for EventMouseDown.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp builds a key release event.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// MouseDown builds a click event at world coordinates (x, y).
func MouseDown(x, y float64) Event {
	return Event{Kind: EventMouseDown, X: x, Y: y}
}

// Quit builds a termination request.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// EventQueue buffers events between ticks.
// The platform pushes as input arrives; the game drains once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
