//go:build linux

package hotkeys

import "golang.design/x/hotkey"

func lookupModifier(token string) (string, hotkey.Modifier, bool) {
	switch token {
	case "ctrl", "control":
		return "ctrl", hotkey.ModCtrl, true
	case "shift":
		return "shift", hotkey.ModShift, true
	case "alt", "option", "opt":
		return "alt", hotkey.Mod1, true
	case "super", "cmd", "command", "meta", "win":
		return "super", hotkey.Mod4, true
	default:
		return "", 0, false
	}
}
