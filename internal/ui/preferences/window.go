package preferences

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/manfredi31/timerapplication/internal/core/model"
	"github.com/manfredi31/timerapplication/internal/hotkeys"
)

const systemBeepOption = "System beep"

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	presets     *widget.Entry
	soundSelect *widget.Select
	volume      *widget.Slider
	startHotkey *widget.Entry
	pauseHotkey *widget.Entry
	stopHotkey  *widget.Entry
	showPanel   *widget.Check
	autostart   *widget.Check
}

// New creates a preferences window. The sounds slice lists the alarm
// sound identifiers available next to the built in beep.
func New(app fyne.App, settings Settings, sounds []string, onSave func(Settings)) *Window {
	window := app.NewWindow("TimerApp Settings")

	presets := widget.NewMultiLineEntry()
	presets.SetMinRowsVisible(5)

	soundSelect := widget.NewSelect(append([]string{systemBeepOption}, sounds...), nil)

	volume := widget.NewSlider(0, 100)
	volume.Step = 5

	startHotkey := widget.NewEntry()
	pauseHotkey := widget.NewEntry()
	stopHotkey := widget.NewEntry()

	showPanel := widget.NewCheck("Open timer panel when a countdown starts", nil)
	autostart := widget.NewCheck("Launch at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("One per line: Name = minutes or MM:SS"),
		presets,
		widget.NewLabelWithStyle("Alarm", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Sound"), soundSelect),
		widget.NewLabel("Volume"),
		volume,
		widget.NewLabelWithStyle("Hotkeys", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Start last timer"), startHotkey),
		container.NewHBox(widget.NewLabel("Pause or resume"), pauseHotkey),
		container.NewHBox(widget.NewLabel("Stop"), stopHotkey),
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		showPanel,
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(460, 580))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		presets:     presets,
		soundSelect: soundSelect,
		volume:      volume,
		startHotkey: startHotkey,
		pauseHotkey: pauseHotkey,
		stopHotkey:  stopHotkey,
		showPanel:   showPanel,
		autostart:   autostart,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings.Clone()
	prefs.presets.SetText(presetsText(settings.Presets))
	prefs.soundSelect.SetSelected(soundOption(settings.AlarmSound))
	prefs.volume.Value = float64(settings.Volume)
	prefs.volume.Refresh()
	prefs.startHotkey.SetText(settings.StartHotkey)
	prefs.pauseHotkey.SetText(settings.PauseHotkey)
	prefs.stopHotkey.SetText(settings.StopHotkey)
	prefs.showPanel.SetChecked(settings.ShowPanel)
	prefs.autostart.SetChecked(settings.Autostart)
}

// Invalid fields keep their previous value instead of blocking the save.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	if presets := parsePresetLines(prefs.presets.Text); len(presets) > 0 {
		settings.Presets = presets
	}

	switch selected := prefs.soundSelect.Selected; selected {
	case "":
	case systemBeepOption:
		settings.AlarmSound = ""
	default:
		settings.AlarmSound = selected
	}

	settings.Volume = int(prefs.volume.Value)

	if combo, err := hotkeys.ParseCombo(prefs.startHotkey.Text); err == nil {
		settings.StartHotkey = combo.String()
	}
	if combo, err := hotkeys.ParseCombo(prefs.pauseHotkey.Text); err == nil {
		settings.PauseHotkey = combo.String()
	}
	if combo, err := hotkeys.ParseCombo(prefs.stopHotkey.Text); err == nil {
		settings.StopHotkey = combo.String()
	}

	settings.ShowPanel = prefs.showPanel.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings.Clone())
	}
	prefs.window.Hide()
}

func soundOption(alarmSound string) string {
	if alarmSound == "" {
		return systemBeepOption
	}
	return alarmSound
}

func presetsText(presets []model.Preset) string {
	lines := make([]string, 0, len(presets))
	for _, preset := range presets {
		if preset.Seconds != 0 {
			lines = append(lines, fmt.Sprintf("%s = %d:%02d", preset.Name, preset.Minutes, preset.Seconds))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s = %d", preset.Name, preset.Minutes))
	}
	return strings.Join(lines, "\n")
}

func parsePresetLines(text string) []model.Preset {
	lines := strings.Split(text, "\n")
	presets := make([]model.Preset, 0, len(lines))
	for _, line := range lines {
		name, clock, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		duration, err := model.ParseClock(clock)
		if err != nil || name == "" {
			continue
		}
		presets = append(presets, model.Preset{
			Name:    name,
			Minutes: int(duration.Minutes()),
			Seconds: int(duration.Seconds()) % 60,
		})
	}
	return presets
}
