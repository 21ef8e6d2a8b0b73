package preferences

import (
	"github.com/manfredi31/timerapplication/internal/core/countdown"
	"github.com/manfredi31/timerapplication/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Presets []model.Preset

	// AlarmSound is a sound identifier from the user sound directory.
	// Empty means the synthesized system beep.
	AlarmSound string
	// Volume is playback loudness in percent, 0 to 100.
	Volume int

	StartHotkey string
	PauseHotkey string
	StopHotkey  string

	ShowPanel bool
	Autostart bool
}

// DefaultSettings returns the stock preferences used before the user saves.
func DefaultSettings() Settings {
	return Settings{
		Presets:     model.DefaultPresets(),
		AlarmSound:  "",
		Volume:      100,
		StartHotkey: "ctrl+shift+t",
		PauseHotkey: "ctrl+shift+p",
		StopHotkey:  "ctrl+shift+x",
		ShowPanel:   true,
		Autostart:   false,
	}
}

// Clone returns a deep copy, so edits in the preferences window never leak
// into the running configuration until saved.
func (settings Settings) Clone() Settings {
	clone := settings
	clone.Presets = append([]model.Preset(nil), settings.Presets...)
	return clone
}

// EngineOptions converts settings to countdown engine options.
func (settings Settings) EngineOptions() countdown.Options {
	return countdown.Options{
		AlarmSound: settings.AlarmSound,
	}
}
