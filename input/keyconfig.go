package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simple2d/core"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyBindings converts "key name -> action name" pairs into a sparse override table
// Single characters and aliases bind runes, anything else must be a tcell key name such as "Left" or "Ctrl-C"
func ParseKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Key),
		Runes:       make(map[rune]Key),
	}

	for keyStr, actionName := range bindings {
		action, ok := keyNames[strings.ToLower(strings.TrimSpace(actionName))]
		if !ok {
			return nil, fmt.Errorf("key %q action %q: %w", keyStr, actionName, core.ErrInvalidInput)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = action
			continue
		}

		k, ok := specialKeysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("key name %q: %w", keyStr, core.ErrInvalidInput)
		}
		kt.SpecialKeys[k] = action
	}

	return kt, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// MergeKeyTable returns base overridden by override, a "none" binding deletes the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == KeyNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v == KeyNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	return result
}
