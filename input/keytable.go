package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to game actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Escape)
	SpecialKeys map[tcell.Key]Key

	// Rune bindings
	Runes map[rune]Key
}

// DefaultKeyTable returns the default bindings: arrows and a/d/w, space to jump
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyUp:     KeyJump,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlD:  KeyDebug,
		},
		Runes: map[rune]Key{
			'a': KeyLeft,
			'h': KeyLeft,
			'd': KeyRight,
			'l': KeyRight,
			'w': KeyJump,
			'k': KeyJump,
			' ': KeyJump,
			'p': KeyPause,
			'q': KeyQuit,
		},
	}
}

// Translate resolves a terminal key event, false when unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey) (Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := kt.Runes[ev.Rune()]
		return k, ok && k != KeyNone
	}
	k, ok := kt.SpecialKeys[ev.Key()]
	return k, ok && k != KeyNone
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Key, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Key, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}
