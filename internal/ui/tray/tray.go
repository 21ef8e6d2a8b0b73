package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
	"github.com/manfredi31/timerapplication/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStartPreset func(model.Preset)
	OnCustomTimer func()
	OnTogglePause func()
	OnStop        func()
	OnShowPanel   func()
	OnShowHistory func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state. The fyne driver feeds the shared
// systray instance, which lets us push the live countdown into the menu-bar
// title next to the icon.
type Manager struct {
	app       desktop.App
	appName   string
	callbacks Callbacks
	presets   []model.Preset

	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	stopItem    *fyne.MenuItem
	panelItem   *fyne.MenuItem
	historyItem *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks and quick-start
// presets.
func New(app desktop.App, appName string, presets []model.Preset, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		appName:   appName,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start timer", nil)

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	manager.stopItem.Disabled = true

	manager.panelItem = fyne.NewMenuItem("Timer panel", func() {
		if manager.callbacks.OnShowPanel != nil {
			manager.callbacks.OnShowPanel()
		}
	})
	manager.historyItem = fyne.NewMenuItem("History", func() {
		if manager.callbacks.OnShowHistory != nil {
			manager.callbacks.OnShowHistory()
		}
	})
	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.SetPresets(presets)
	return manager
}

// SetPresets replaces the quick-start entries under "Start timer".
func (manager *Manager) SetPresets(presets []model.Preset) {
	manager.presets = append([]model.Preset(nil), presets...)

	items := make([]*fyne.MenuItem, 0, len(manager.presets)+1)
	for _, preset := range manager.presets {
		preset := preset
		items = append(items, fyne.NewMenuItem(preset.MenuLabel(), func() {
			if manager.callbacks.OnStartPreset != nil {
				manager.callbacks.OnStartPreset(preset)
			}
		}))
	}
	items = append(items, fyne.NewMenuItem("Custom...", func() {
		if manager.callbacks.OnCustomTimer != nil {
			manager.callbacks.OnCustomTimer()
		}
	}))

	manager.startItem.ChildMenu = fyne.NewMenu("", items...)
	manager.refreshMenu()
}

// Apply renders an engine snapshot into the menu-bar title and menu items.
func (manager *Manager) Apply(snapshot countdown.Snapshot) {
	systray.SetTitle(snapshot.MenuTitle())
	systray.SetTooltip(manager.appName + ": " + statusLine(snapshot))

	switch snapshot.State {
	case countdown.StateRunning:
		manager.pauseItem.Label = "Pause"
		manager.pauseItem.Disabled = false
		manager.stopItem.Label = "Stop"
		manager.stopItem.Disabled = false
	case countdown.StatePaused:
		manager.pauseItem.Label = "Resume"
		manager.pauseItem.Disabled = false
		manager.stopItem.Label = "Stop"
		manager.stopItem.Disabled = false
	case countdown.StateAlarming:
		manager.pauseItem.Label = "Pause"
		manager.pauseItem.Disabled = true
		manager.stopItem.Label = "Dismiss alarm"
		manager.stopItem.Disabled = false
	default:
		manager.pauseItem.Label = "Pause"
		manager.pauseItem.Disabled = true
		manager.stopItem.Label = "Stop"
		manager.stopItem.Disabled = true
	}

	manager.statusItem.Label = statusLine(snapshot)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.appName,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.panelItem,
		manager.historyItem,
		manager.prefsItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}

func statusLine(snapshot countdown.Snapshot) string {
	suffix := ""
	if snapshot.Label != "" {
		suffix = " (" + snapshot.Label + ")"
	}

	switch snapshot.State {
	case countdown.StateRunning:
		return "Running: " + snapshot.FormattedTime() + suffix
	case countdown.StatePaused:
		return "Paused: " + snapshot.FormattedTime() + suffix
	case countdown.StateAlarming:
		return "Finished" + suffix
	default:
		return "Ready"
	}
}
