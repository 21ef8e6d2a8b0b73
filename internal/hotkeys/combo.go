package hotkeys

import (
	"errors"
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

var (
	// ErrUnknownKey indicates the final token of a combo names no key.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownModifier indicates a leading token names no modifier on this
	// platform.
	ErrUnknownModifier = errors.New("unknown modifier")
	// ErrNoModifier indicates a bare key, which would shadow normal typing
	// system wide.
	ErrNoModifier = errors.New("hotkey needs at least one modifier")
)

const disabledSpec = "none"

// Combo is one parsed global hotkey. The zero value is a disabled combo.
type Combo struct {
	Mods []hotkey.Modifier
	Key  hotkey.Key

	spec string
}

// Enabled reports whether the combo binds anything.
func (combo Combo) Enabled() bool {
	return combo.spec != ""
}

// String returns the normalized spec, e.g. "ctrl+shift+t".
func (combo Combo) String() string {
	if combo.spec == "" {
		return disabledSpec
	}
	return combo.spec
}

// ParseCombo parses a textual hotkey spec of the form "mod+...+key".
// Matching is case-insensitive and whitespace-tolerant. An empty spec or
// "none" yields a disabled combo without error.
func ParseCombo(spec string) (Combo, error) {
	normalized := strings.ToLower(strings.TrimSpace(spec))
	if normalized == "" || normalized == disabledSpec {
		return Combo{}, nil
	}

	tokens := strings.Split(normalized, "+")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	keyToken := tokens[len(tokens)-1]
	key, ok := keyNames[keyToken]
	if !ok {
		return Combo{}, fmt.Errorf("%w: %q", ErrUnknownKey, keyToken)
	}

	var (
		mods      []hotkey.Modifier
		canonical []string
		seen      = make(map[string]bool)
	)
	for _, token := range tokens[:len(tokens)-1] {
		name, modifier, ok := lookupModifier(token)
		if !ok {
			return Combo{}, fmt.Errorf("%w: %q", ErrUnknownModifier, token)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		mods = append(mods, modifier)
		canonical = append(canonical, name)
	}
	if len(mods) == 0 {
		return Combo{}, fmt.Errorf("%w: %q", ErrNoModifier, normalized)
	}

	return Combo{
		Mods: mods,
		Key:  key,
		spec: strings.Join(append(canonical, keyToken), "+"),
	}, nil
}

var keyNames = buildKeyNames()

func buildKeyNames() map[string]hotkey.Key {
	names := map[string]hotkey.Key{
		"space":  hotkey.KeySpace,
		"enter":  hotkey.KeyReturn,
		"return": hotkey.KeyReturn,
		"escape": hotkey.KeyEscape,
		"esc":    hotkey.KeyEscape,
		"tab":    hotkey.KeyTab,
		"up":     hotkey.KeyUp,
		"down":   hotkey.KeyDown,
		"left":   hotkey.KeyLeft,
		"right":  hotkey.KeyRight,
	}

	letters := []hotkey.Key{
		hotkey.KeyA, hotkey.KeyB, hotkey.KeyC, hotkey.KeyD, hotkey.KeyE,
		hotkey.KeyF, hotkey.KeyG, hotkey.KeyH, hotkey.KeyI, hotkey.KeyJ,
		hotkey.KeyK, hotkey.KeyL, hotkey.KeyM, hotkey.KeyN, hotkey.KeyO,
		hotkey.KeyP, hotkey.KeyQ, hotkey.KeyR, hotkey.KeyS, hotkey.KeyT,
		hotkey.KeyU, hotkey.KeyV, hotkey.KeyW, hotkey.KeyX, hotkey.KeyY,
		hotkey.KeyZ,
	}
	for i, key := range letters {
		names[string(rune('a'+i))] = key
	}

	digits := []hotkey.Key{
		hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
		hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
	}
	for i, key := range digits {
		names[string(rune('0'+i))] = key
	}

	functionKeys := []hotkey.Key{
		hotkey.KeyF1, hotkey.KeyF2, hotkey.KeyF3, hotkey.KeyF4,
		hotkey.KeyF5, hotkey.KeyF6, hotkey.KeyF7, hotkey.KeyF8,
		hotkey.KeyF9, hotkey.KeyF10, hotkey.KeyF11, hotkey.KeyF12,
	}
	for i, key := range functionKeys {
		names[fmt.Sprintf("f%d", i+1)] = key
	}

	return names
}
