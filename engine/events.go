package engine

// EventType identifies a simulation event consumed after the systems ran
type EventType int

const (
	// EventCollision is pushed by movement when an enemy car hits the player
	EventCollision EventType = iota + 1

	// EventEnemyPassed is pushed when an enemy car is recycled below the screen (score +1)
	EventEnemyPassed

	// EventRestart is pushed by the input translation on the restart key
	EventRestart

	// EventQuit is pushed by the input translation on the quit key or terminal close
	EventQuit
)

// String returns the event name for logs
func (e EventType) String() string {
	switch e {
	case EventCollision:
		return "Collision"
	case EventEnemyPassed:
		return "EnemyPassed"
	case EventRestart:
		return "Restart"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Event is a queued event stamped with the frame it was produced in
type Event struct {
	Type  EventType
	Frame int64
}

// EventQueue is a single-consumer FIFO drained once per tick
type EventQueue struct {
	events []Event
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Consume returns all queued events in order and empties the queue
func (q *EventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
