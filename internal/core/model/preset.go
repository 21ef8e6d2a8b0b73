package model

import (
	"fmt"
	"time"
)

// Preset is one named quick-start duration shown in the tray menu and popover.
type Preset struct {
	Name    string
	Minutes int
	Seconds int
}

// Duration returns the preset length as a time.Duration.
func (preset Preset) Duration() time.Duration {
	return time.Duration(preset.Minutes)*time.Minute + time.Duration(preset.Seconds)*time.Second
}

// MenuLabel renders the preset for menu items, e.g. "Tea (3:30)".
func (preset Preset) MenuLabel() string {
	return fmt.Sprintf("%s (%d:%02d)", preset.Name, preset.Minutes, preset.Seconds)
}

// DefaultPresets returns the stock preset set used until the user edits it.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "Stand-up", Minutes: 10},
		{Name: "Pomodoro", Minutes: 25},
		{Name: "Short break", Minutes: 5},
		{Name: "Tea", Minutes: 3, Seconds: 30},
		{Name: "Hour focus", Minutes: 60},
	}
}

