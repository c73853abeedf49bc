package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to logical keys
type KeyTable struct {
	// Special keys (arrows, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]Key

	// Printable runes, matched case-insensitively
	Runes map[rune]Key
}

// DefaultKeyTable returns the default bindings: arrows and A/D steer, R restarts,
// Q, Escape and Ctrl+C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'a': KeyA,
			'd': KeyD,
			'r': KeyRestart,
			'q': KeyQuit,
		},
	}
}

// Lookup resolves a key event to a logical key, KeyNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
