package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Signal is a discrete request produced by translating an event
type Signal uint8

const (
	SignalNone Signal = iota
	SignalRestart
	SignalQuit
)

// KeyState tracks held keys from press events.
// A key is down while less than the hold window has passed since its last press
type KeyState struct {
	table   *KeyTable
	clock   Clock
	hold    time.Duration
	pressed [keyCount]time.Time
}

// NewKeyState creates a key state with the given bindings and hold window
func NewKeyState(table *KeyTable, clock Clock, hold time.Duration) *KeyState {
	return &KeyState{
		table: table,
		clock: clock,
		hold:  hold,
	}
}

// Press marks k as pressed now
func (s *KeyState) Press(k Key) {
	if k.Valid() {
		s.pressed[k] = s.clock.Now()
	}
}

// Release clears k immediately
func (s *KeyState) Release(k Key) {
	if k.Valid() {
		s.pressed[k] = time.Time{}
	}
}

// ReleaseAll clears every key
func (s *KeyState) ReleaseAll() {
	s.pressed = [keyCount]time.Time{}
}

// IsDown reports whether k is held. Unsupported keys return ErrUnknownKey
func (s *KeyState) IsDown(k Key) (bool, error) {
	if err := checkKey(k); err != nil {
		return false, err
	}
	at := s.pressed[k]
	if at.IsZero() {
		return false, nil
	}
	return s.clock.Now().Sub(at) < s.hold, nil
}

// Translate records key presses from a terminal event and returns the discrete
// signal it carries. Opposite steering keys release each other so a direction
// change does not wait for the hold window
func (s *KeyState) Translate(ev tcell.Event) Signal {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := s.table.Lookup(ev)
		switch k {
		case KeyNone:
			return SignalNone
		case KeyQuit:
			return SignalQuit
		case KeyRestart:
			s.Press(k)
			return SignalRestart
		case KeyLeft, KeyA:
			s.Release(KeyRight)
			s.Release(KeyD)
		case KeyRight, KeyD:
			s.Release(KeyLeft)
			s.Release(KeyA)
		}
		s.Press(k)
	case *tcell.EventError:
		return SignalQuit
	case *tcell.EventFocus:
		if !ev.Focused {
			s.ReleaseAll()
		}
	}
	return SignalNone
}
