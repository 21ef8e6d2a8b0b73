// Package panel provides the floating always-on-top timer display with
// the large countdown readout and pause/stop controls.
package panel

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
)

const (
	timeTextSize  = 64
	labelTextSize = 15
	panelWidth    = 340
	panelHeight   = 220
)

var (
	backgroundColor = color.NRGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xeb}
	idleColor       = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	runningColor    = color.NRGBA{R: 0x4f, G: 0xc3, B: 0x7f, A: 0xff}
	pausedColor     = color.NRGBA{R: 0xf0, G: 0xb1, B: 0x4e, A: 0xff}
	alarmColor      = color.NRGBA{R: 0xe5, G: 0x6a, B: 0x5f, A: 0xff}
	labelColor      = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Callbacks connects panel controls to timer actions.
type Callbacks struct {
	OnTogglePause func()
	OnStop        func()
}

// Window is the floating countdown panel.
type Window struct {
	window      fyne.Window
	timeText    *canvas.Text
	labelText   *canvas.Text
	progress    *widget.ProgressBar
	pauseButton *widget.Button
	stopButton  *widget.Button
	shown       bool
}

// New creates the panel window. It stays hidden until Show is called.
func New(app fyne.App, appName string, callbacks Callbacks) *Window {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	} else {
		window = app.NewWindow(appName)
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor)

	timeText := canvas.NewText("00:00", idleColor)
	timeText.TextSize = timeTextSize
	timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeText.Alignment = fyne.TextAlignCenter

	labelText := canvas.NewText("Ready", labelColor)
	labelText.TextSize = labelTextSize
	labelText.Alignment = fyne.TextAlignCenter

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	pauseButton := widget.NewButton("Pause", func() {
		if callbacks.OnTogglePause != nil {
			callbacks.OnTogglePause()
		}
	})
	pauseButton.Disable()

	stopButton := widget.NewButton("Stop", func() {
		if callbacks.OnStop != nil {
			callbacks.OnStop()
		}
	})
	stopButton.Disable()

	buttons := container.NewHBox(layout.NewSpacer(), pauseButton, stopButton, layout.NewSpacer())
	content := container.NewPadded(container.NewVBox(
		timeText,
		labelText,
		progress,
		buttons,
	))
	root := container.NewMax(background, content)

	window.SetContent(root)
	window.Resize(fyne.NewSize(panelWidth, panelHeight))
	window.CenterOnScreen()

	panel := &Window{
		window:      window,
		timeText:    timeText,
		labelText:   labelText,
		progress:    progress,
		pauseButton: pauseButton,
		stopButton:  stopButton,
	}

	window.SetCloseIntercept(panel.Hide)

	return panel
}

// Show displays the panel.
func (panel *Window) Show() {
	panel.shown = true
	panel.window.Show()
}

// Hide removes the panel from the screen without destroying it.
func (panel *Window) Hide() {
	panel.shown = false
	panel.window.Hide()
}

// Toggle shows the panel when hidden and hides it when shown.
func (panel *Window) Toggle() {
	if panel.shown {
		panel.Hide()
		return
	}
	panel.Show()
}

// Apply refreshes the panel widgets from a countdown snapshot.
// Call it on the fyne goroutine.
func (panel *Window) Apply(snapshot countdown.Snapshot) {
	panel.timeText.Text = snapshot.FormattedTime()
	panel.timeText.Color = stateColor(snapshot.State)
	panel.timeText.Refresh()

	panel.labelText.Text = panelCaption(snapshot)
	panel.labelText.Refresh()

	panel.progress.SetValue(snapshot.Progress())

	panel.pauseButton.SetText(pauseCaption(snapshot.State))
	if snapshot.State == countdown.StateRunning || snapshot.State == countdown.StatePaused {
		panel.pauseButton.Enable()
	} else {
		panel.pauseButton.Disable()
	}

	panel.stopButton.SetText(stopCaption(snapshot.State))
	if snapshot.State == countdown.StateIdle {
		panel.stopButton.Disable()
	} else {
		panel.stopButton.Enable()
	}
}

func stateColor(state countdown.State) color.Color {
	switch state {
	case countdown.StateRunning:
		return runningColor
	case countdown.StatePaused:
		return pausedColor
	case countdown.StateAlarming:
		return alarmColor
	default:
		return idleColor
	}
}

func panelCaption(snapshot countdown.Snapshot) string {
	switch {
	case snapshot.State == countdown.StateIdle:
		return "Ready"
	case snapshot.State == countdown.StateAlarming && snapshot.Label == "":
		return "Time's up!"
	case snapshot.Label == "":
		return "Countdown"
	default:
		return snapshot.Label
	}
}

func pauseCaption(state countdown.State) string {
	if state == countdown.StatePaused {
		return "Resume"
	}
	return "Pause"
}

func stopCaption(state countdown.State) string {
	if state == countdown.StateAlarming {
		return "Dismiss"
	}
	return "Stop"
}
