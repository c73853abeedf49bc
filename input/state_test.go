package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func newTestState() (*KeyState, *MockClock) {
	clock := NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewKeyState(DefaultKeyTable(), clock, 200*time.Millisecond), clock
}

func TestHeldLookup(t *testing.T) {
	h := Hold(KeyLeft, KeyD)

	for _, tc := range []struct {
		key  Key
		want bool
	}{
		{KeyLeft, true},
		{KeyRight, false},
		{KeyA, false},
		{KeyD, true},
		{KeyRestart, false},
		{KeyQuit, false},
	} {
		got, err := h.IsDown(tc.key)
		if err != nil {
			t.Fatalf("IsDown(%s) error = %v", tc.key, err)
		}
		if got != tc.want {
			t.Errorf("IsDown(%s) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestUnknownKeyFailsFast(t *testing.T) {
	state, _ := newTestState()

	for _, k := range []Key{KeyNone, keyCount, Key(200)} {
		if _, err := Hold().IsDown(k); errors.Cause(err) != ErrUnknownKey {
			t.Errorf("Held.IsDown(%d) error = %v, want ErrUnknownKey", k, err)
		}
		if _, err := state.IsDown(k); errors.Cause(err) != ErrUnknownKey {
			t.Errorf("KeyState.IsDown(%d) error = %v, want ErrUnknownKey", k, err)
		}
	}
}

func TestKeyHoldWindow(t *testing.T) {
	state, clock := newTestState()

	state.Translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	if down, _ := state.IsDown(KeyLeft); !down {
		t.Fatal("Expected left to be down right after press")
	}

	clock.Advance(150 * time.Millisecond)
	if down, _ := state.IsDown(KeyLeft); !down {
		t.Error("Expected left to be down within hold window")
	}

	clock.Advance(100 * time.Millisecond)
	if down, _ := state.IsDown(KeyLeft); down {
		t.Error("Expected left to be released after hold window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	state, clock := newTestState()

	for i := 0; i < 5; i++ {
		state.Translate(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
		clock.Advance(150 * time.Millisecond)
	}

	if down, _ := state.IsDown(KeyD); !down {
		t.Error("Expected auto-repeat to keep D held")
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	state, _ := newTestState()

	state.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	state.Translate(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if down, _ := state.IsDown(KeyA); down {
		t.Error("Expected A released by right press")
	}
	if down, _ := state.IsDown(KeyRight); !down {
		t.Error("Expected right held")
	}
}

func TestTranslateSignals(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Signal
	}{
		{"restart lower", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), SignalRestart},
		{"restart upper", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), SignalRestart},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), SignalQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), SignalQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), SignalQuit},
		{"steer", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), SignalNone},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), SignalNone},
		{"resize", tcell.NewEventResize(80, 24), SignalNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := newTestState()
			if got := state.Translate(tt.ev); got != tt.want {
				t.Errorf("Translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFocusLossReleasesKeys(t *testing.T) {
	state, _ := newTestState()

	state.Translate(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	state.Translate(tcell.NewEventFocus(false))

	if down, _ := state.IsDown(KeyRight); down {
		t.Error("Expected keys released on focus loss")
	}
}
