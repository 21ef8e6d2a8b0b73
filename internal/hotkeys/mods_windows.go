//go:build windows

package hotkeys

import "golang.design/x/hotkey"

func lookupModifier(token string) (string, hotkey.Modifier, bool) {
	switch token {
	case "ctrl", "control":
		return "ctrl", hotkey.ModCtrl, true
	case "shift":
		return "shift", hotkey.ModShift, true
	case "alt", "option", "opt":
		return "alt", hotkey.ModAlt, true
	case "win", "super", "cmd", "command", "meta":
		return "win", hotkey.ModWin, true
	default:
		return "", 0, false
	}
}
