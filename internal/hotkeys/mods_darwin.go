//go:build darwin

package hotkeys

import "golang.design/x/hotkey"

func lookupModifier(token string) (string, hotkey.Modifier, bool) {
	switch token {
	case "ctrl", "control":
		return "ctrl", hotkey.ModCtrl, true
	case "shift":
		return "shift", hotkey.ModShift, true
	case "alt", "option", "opt":
		return "option", hotkey.ModOption, true
	case "cmd", "command", "super", "meta":
		return "cmd", hotkey.ModCmd, true
	default:
		return "", 0, false
	}
}
