// Package input maps terminal key events to the logical keys the game queries.
//
// Terminals report key presses (and auto-repeat) but no releases, so a key
// counts as held for a short window after its last press or repeat.
package input

import (
	"github.com/pkg/errors"
)

// Key is a logical key the game can query
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyA
	KeyD
	KeyRestart
	KeyQuit

	keyCount // sentinel, not a key
)

// ErrUnknownKey is returned when a key outside the supported set is queried
var ErrUnknownKey = errors.New("unknown key")

var keyNames = [keyCount]string{
	KeyNone:    "none",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyA:       "a",
	KeyD:       "d",
	KeyRestart: "restart",
	KeyQuit:    "quit",
}

// String returns the key name
func (k Key) String() string {
	if k.Valid() {
		return keyNames[k]
	}
	return "invalid"
}

// Valid reports whether k is one of the supported logical keys
func (k Key) Valid() bool {
	return k > KeyNone && k < keyCount
}

func checkKey(k Key) error {
	if !k.Valid() {
		return errors.Wrapf(ErrUnknownKey, "key %d", uint8(k))
	}
	return nil
}

// Held is a fixed set of held keys, the input source for tests and replays
type Held uint16

// Hold returns the set containing the given keys
func Hold(keys ...Key) Held {
	var h Held
	for _, k := range keys {
		h |= 1 << k
	}
	return h
}

// IsDown reports whether k is in the set
func (h Held) IsDown(k Key) (bool, error) {
	if err := checkKey(k); err != nil {
		return false, err
	}
	return h&(1<<k) != 0, nil
}
