// Package popover provides the main timer window: duration slider, task
// entry, preset shortcuts and transport buttons, with a live readout of
// the active countdown.
package popover

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
	"github.com/manfredi31/timerapplication/internal/core/model"
)

const (
	minMinutes      = 1
	maxMinutes      = 120
	defaultMinutes  = 25
	readoutTextSize = 44
)

var (
	readoutColor = color.NRGBA{R: 0x2e, G: 0x86, B: 0x5c, A: 0xff}
	alarmColor   = color.NRGBA{R: 0xcf, G: 0x45, B: 0x3c, A: 0xff}
)

// Callbacks connects the main window to timer actions.
type Callbacks struct {
	OnStart       func(duration time.Duration, label string)
	OnTogglePause func()
	OnStop        func()
	OnSavePreset  func(preset model.Preset)
}

// Window is the main timer window.
type Window struct {
	window      fyne.Window
	callbacks   Callbacks
	readout     *canvas.Text
	status      *widget.Label
	minutes     *widget.Slider
	taskEntry   *widget.Entry
	presetsRow  *fyne.Container
	startButton *widget.Button
	pauseButton *widget.Button
	stopButton  *widget.Button
	snapshot    countdown.Snapshot
}

// New creates the main window. It stays hidden until Show is called.
func New(app fyne.App, appName string, presets []model.Preset, callbacks Callbacks) *Window {
	window := app.NewWindow(appName)

	readout := canvas.NewText(formatPick(defaultMinutes), readoutColor)
	readout.TextSize = readoutTextSize
	readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	readout.Alignment = fyne.TextAlignCenter

	status := widget.NewLabel("Ready")
	status.Alignment = fyne.TextAlignCenter

	minutes := widget.NewSlider(minMinutes, maxMinutes)
	minutes.Step = 1
	minutes.Value = defaultMinutes

	taskEntry := widget.NewEntry()
	taskEntry.SetPlaceHolder("What is this timer for?")

	popover := &Window{
		window:     window,
		callbacks:  callbacks,
		readout:    readout,
		status:     status,
		minutes:    minutes,
		taskEntry:  taskEntry,
		presetsRow: container.NewHBox(),
		snapshot:   countdown.Snapshot{State: countdown.StateIdle},
	}

	minutes.OnChanged = func(float64) {
		popover.refreshIdleReadout()
	}

	popover.startButton = widget.NewButton("Start", popover.handleStart)
	popover.pauseButton = widget.NewButton("Pause", func() {
		if callbacks.OnTogglePause != nil {
			callbacks.OnTogglePause()
		}
	})
	popover.pauseButton.Disable()
	popover.stopButton = widget.NewButton("Stop", func() {
		if callbacks.OnStop != nil {
			callbacks.OnStop()
		}
	})
	popover.stopButton.Disable()
	saveButton := widget.NewButton("Save preset", popover.handleSavePreset)

	taskEntry.OnSubmitted = func(string) { popover.handleStart() }

	transport := container.NewHBox(
		popover.startButton,
		popover.pauseButton,
		popover.stopButton,
		layout.NewSpacer(),
		saveButton,
	)

	content := container.NewPadded(container.NewVBox(
		readout,
		status,
		minutes,
		container.NewBorder(nil, nil, widget.NewLabel("Task"), nil, taskEntry),
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		popover.presetsRow,
		transport,
	))

	window.SetContent(content)
	window.Resize(fyne.NewSize(400, 340))
	window.SetCloseIntercept(window.Hide)

	popover.SetPresets(presets)

	return popover
}

// Show displays the window. Opening during an active session pre-fills
// the slider and task entry from that session.
func (popover *Window) Show() {
	if popover.snapshot.State != countdown.StateIdle {
		popover.minutes.Value = float64(clampMinutes(int(popover.snapshot.Total / time.Minute)))
		popover.minutes.Refresh()
		popover.taskEntry.SetText(popover.snapshot.Label)
	}
	popover.window.Show()
	popover.window.RequestFocus()
}

// Hide removes the window from the screen without destroying it.
func (popover *Window) Hide() {
	popover.window.Hide()
}

// SetPresets rebuilds the preset shortcut row.
func (popover *Window) SetPresets(presets []model.Preset) {
	buttons := make([]fyne.CanvasObject, 0, len(presets))
	for _, preset := range presets {
		buttons = append(buttons, widget.NewButton(preset.MenuLabel(), func() {
			if popover.callbacks.OnStart != nil {
				popover.callbacks.OnStart(preset.Duration(), preset.Name)
			}
		}))
	}
	popover.presetsRow.Objects = buttons
	popover.presetsRow.Refresh()
}

// Apply refreshes the window from a countdown snapshot.
// Call it on the fyne goroutine.
func (popover *Window) Apply(snapshot countdown.Snapshot) {
	popover.snapshot = snapshot

	if snapshot.State == countdown.StateIdle {
		popover.readout.Text = formatPick(int(popover.minutes.Value))
		popover.readout.Color = readoutColor
	} else {
		popover.readout.Text = snapshot.FormattedTime()
		popover.readout.Color = readoutColor
		if snapshot.State == countdown.StateAlarming {
			popover.readout.Color = alarmColor
		}
	}
	popover.readout.Refresh()

	popover.status.SetText(statusText(snapshot))

	popover.pauseButton.SetText(pauseCaption(snapshot.State))
	if snapshot.State == countdown.StateRunning || snapshot.State == countdown.StatePaused {
		popover.pauseButton.Enable()
	} else {
		popover.pauseButton.Disable()
	}

	if snapshot.State == countdown.StateIdle {
		popover.stopButton.Disable()
	} else {
		popover.stopButton.Enable()
	}
}

func (popover *Window) handleStart() {
	if popover.callbacks.OnStart == nil {
		return
	}
	duration := time.Duration(popover.minutes.Value) * time.Minute
	popover.callbacks.OnStart(duration, strings.TrimSpace(popover.taskEntry.Text))
}

func (popover *Window) handleSavePreset() {
	if popover.callbacks.OnSavePreset == nil {
		return
	}
	minutes := clampMinutes(int(popover.minutes.Value))
	name := strings.TrimSpace(popover.taskEntry.Text)
	if name == "" {
		name = fmt.Sprintf("%d min", minutes)
	}
	popover.callbacks.OnSavePreset(model.Preset{Name: name, Minutes: minutes})
}

func (popover *Window) refreshIdleReadout() {
	if popover.snapshot.State != countdown.StateIdle {
		return
	}
	popover.readout.Text = formatPick(int(popover.minutes.Value))
	popover.readout.Refresh()
}

func statusText(snapshot countdown.Snapshot) string {
	switch snapshot.State {
	case countdown.StateRunning:
		if snapshot.Label == "" {
			return "Counting down"
		}
		return snapshot.Label
	case countdown.StatePaused:
		if snapshot.Label == "" {
			return "Paused"
		}
		return "Paused · " + snapshot.Label
	case countdown.StateAlarming:
		if snapshot.Label == "" {
			return "Time's up!"
		}
		return "Time's up! · " + snapshot.Label
	default:
		return "Ready"
	}
}

func pauseCaption(state countdown.State) string {
	if state == countdown.StatePaused {
		return "Resume"
	}
	return "Pause"
}

func formatPick(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d:00", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%02d:00", minutes)
}

func clampMinutes(minutes int) int {
	if minutes < minMinutes {
		return minMinutes
	}
	if minutes > maxMinutes {
		return maxMinutes
	}
	return minutes
}
