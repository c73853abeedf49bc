package fsm

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/engine"
)

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return errors.Errorf("state %s (%d) transitions to missing state %d", node.Name, id, t.TargetID)
			}
		}
	}

	node, ok := m.nodes[initial]
	if !ok {
		return errors.Errorf("initial state ID %d not found", initial)
	}

	m.activeStateID = initial
	m.ticksInState = 0
	return runActions(ctx, node.OnEnter)
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state's name
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return "None"
}

// TicksInState returns the number of updates since the last transition
func (m *Machine[T]) TicksInState() int64 {
	return m.ticksInState
}

// Update runs the active state's per-tick actions, then evaluates tick transitions
func (m *Machine[T]) Update(ctx T) error {
	if m.activeStateID == StateNone {
		return nil
	}

	m.ticksInState++
	node := m.nodes[m.activeStateID]
	if err := runActions(ctx, node.OnUpdate); err != nil {
		return err
	}

	for _, t := range node.Transitions {
		if t.Event == 0 && (t.Guard == nil || t.Guard(ctx)) {
			return m.transition(ctx, t.TargetID)
		}
	}
	return nil
}

// HandleEvent routes an event through the active state.
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, event engine.EventType) (bool, error) {
	if m.activeStateID == StateNone {
		return false, nil
	}

	node := m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Event == event && (t.Guard == nil || t.Guard(ctx)) {
			return true, m.transition(ctx, t.TargetID)
		}
	}
	return false, nil
}

// transition exits the active state and enters the target
func (m *Machine[T]) transition(ctx T, target StateID) error {
	from := m.nodes[m.activeStateID]
	if err := runActions(ctx, from.OnExit); err != nil {
		return err
	}

	m.activeStateID = target
	m.ticksInState = 0
	return runActions(ctx, m.nodes[target].OnEnter)
}

func runActions[T any](ctx T, actions []ActionFunc[T]) error {
	for _, action := range actions {
		if err := action(ctx); err != nil {
			return err
		}
	}
	return nil
}
