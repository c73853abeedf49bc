// Package fsm is a small flat finite state machine driven by ticks and events.
package fsm

import "github.com/lixenwraith/phonk-racer/engine"

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialised machine
const StateNone StateID = 0

// Machine is the generic state machine runtime.
// T is the context type passed to actions and guards (e.g., *engine.GameContext)
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// Runtime state
	activeStateID StateID
	ticksInState  int64
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    engine.EventType // 0 = Tick (auto-transition)
	Guard    GuardFunc[T]     // nil = Always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T) error
