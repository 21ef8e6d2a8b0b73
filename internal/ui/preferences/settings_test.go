package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manfredi31/timerapplication/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()

	require.Equal(t, model.DefaultPresets(), settings.Presets)
	require.Empty(t, settings.AlarmSound)
	require.Equal(t, 100, settings.Volume)
	require.Equal(t, "ctrl+shift+t", settings.StartHotkey)
	require.Equal(t, "ctrl+shift+p", settings.PauseHotkey)
	require.Equal(t, "ctrl+shift+x", settings.StopHotkey)
	require.True(t, settings.ShowPanel)
	require.False(t, settings.Autostart)
}

func TestCloneCopiesPresets(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	clone := settings.Clone()
	clone.Presets[0].Name = "Changed"

	require.NotEqual(t, settings.Presets[0].Name, clone.Presets[0].Name)
}

func TestEngineOptions(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.AlarmSound = "chime"

	require.Equal(t, "chime", settings.EngineOptions().AlarmSound)
}

func TestPresetsTextRoundTrip(t *testing.T) {
	t.Parallel()

	presets := []model.Preset{
		{Name: "Pomodoro", Minutes: 25},
		{Name: "Tea", Minutes: 3, Seconds: 30},
		{Name: "Hour focus", Minutes: 60},
	}

	text := presetsText(presets)
	require.Equal(t, "Pomodoro = 25\nTea = 3:30\nHour focus = 60", text)
	require.Equal(t, presets, parsePresetLines(text))
}

func TestParsePresetLinesSkipsInvalid(t *testing.T) {
	t.Parallel()

	text := "Pomodoro = 25\nnot a preset\n= 10\nEmpty duration =\nBad = 3:99\nTea = 3:30\n"
	presets := parsePresetLines(text)

	require.Equal(t, []model.Preset{
		{Name: "Pomodoro", Minutes: 25},
		{Name: "Tea", Minutes: 3, Seconds: 30},
	}, presets)
}

func TestParsePresetLinesHourForm(t *testing.T) {
	t.Parallel()

	presets := parsePresetLines("Deep work = 1:30:00")
	require.Equal(t, []model.Preset{{Name: "Deep work", Minutes: 90}}, presets)
	require.Equal(t, 90*time.Minute, presets[0].Duration())
}

func TestSoundOption(t *testing.T) {
	t.Parallel()

	require.Equal(t, systemBeepOption, soundOption(""))
	require.Equal(t, "chime", soundOption("chime"))
}
