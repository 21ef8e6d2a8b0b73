package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
	"github.com/manfredi31/timerapplication/internal/core/model"
	"github.com/manfredi31/timerapplication/internal/hotkeys"
	"github.com/manfredi31/timerapplication/internal/logger"
	"github.com/manfredi31/timerapplication/internal/notify"
	"github.com/manfredi31/timerapplication/internal/platform"
	"github.com/manfredi31/timerapplication/internal/sound"
	"github.com/manfredi31/timerapplication/internal/storage"
	"github.com/manfredi31/timerapplication/internal/ui/history"
	"github.com/manfredi31/timerapplication/internal/ui/panel"
	"github.com/manfredi31/timerapplication/internal/ui/popover"
	"github.com/manfredi31/timerapplication/internal/ui/preferences"
	"github.com/manfredi31/timerapplication/internal/ui/tray"
	"github.com/manfredi31/timerapplication/internal/version"
	"github.com/manfredi31/timerapplication/resources"
)

const (
	appName = "TimerApp"
	appID   = "com.timerapp.app"
)

func main() {
	root := newRootCommand()
	version.Attach(root)

	if err := root.Execute(); err != nil {
		logger.Logger().Fatalf("%v", err)
	}
}

func newRootCommand() *cobra.Command {
	var (
		logLevel   string
		configPath string
	)

	root := &cobra.Command{
		Use:           "timerapp",
		Short:         "Menu bar countdown timer",
		Long:          "TimerApp lives in the menu bar and runs one named countdown at a time, with presets, global hotkeys and a session history.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				logger.Logger().Warnf("unknown log level %q, using %s", logLevel, level)
			}
			logger.SetLevel(level)
			return runApp(configPath)
		},
	}

	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.Flags().StringVar(&configPath, "config", "", "settings file path (default: the user config directory)")

	return root
}

func runApp(configPath string) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	loadSettings := func() (preferences.Settings, error) {
		if configPath != "" {
			return storage.LoadSettingsFile(configPath)
		}
		return storage.LoadSettings(appName)
	}
	saveSettings := func(settings preferences.Settings) error {
		if configPath != "" {
			return storage.SaveSettingsFile(configPath, settings)
		}
		return storage.SaveSettings(appName, settings)
	}

	settings, err := loadSettings()
	if err != nil {
		logger.Logger().Warnf("load settings: %v, using defaults", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel(appName + " is running in the menu bar."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	soundDir, err := sound.DefaultDir(appName)
	if err != nil {
		logger.Logger().Warnf("resolve sound dir: %v", err)
	}
	player := sound.NewPlayer(soundDir)
	player.SetVolume(settings.Volume)

	historyPath, err := storage.DefaultHistoryPath(appName)
	if err != nil {
		return fmt.Errorf("resolve history path: %w", err)
	}
	historyStore, err := storage.OpenHistory(historyPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() {
		if err := historyStore.Close(); err != nil {
			logger.Logger().Errorf("close history: %v", err)
		}
	}()

	engine := countdown.New(player, notify.NewSink(fyneApp), settings.EngineOptions())
	defer engine.Close()

	hotkeyManager := hotkeys.NewManager()
	defer hotkeyManager.Close()

	lastDuration := 10 * time.Minute
	lastLabel := ""
	if len(settings.Presets) > 0 {
		lastDuration = settings.Presets[0].Duration()
		lastLabel = settings.Presets[0].Name
	}

	var (
		trayManager   *tray.Manager
		panelWindow   *panel.Window
		popoverWindow *popover.Window
		historyWindow *history.Window
		prefsWindow   *preferences.Window
	)

	startTimer := func(duration time.Duration, label string) {
		if err := engine.Start(duration, label); err != nil {
			logger.Logger().Errorf("start timer: %v", err)
			return
		}
		lastDuration = duration
		lastLabel = label
		if settings.ShowPanel {
			panelWindow.Show()
		}
	}

	savePreset := func(preset model.Preset) {
		settings.Presets = append(settings.Presets, preset)
		trayManager.SetPresets(settings.Presets)
		popoverWindow.SetPresets(settings.Presets)
		if err := saveSettings(settings); err != nil {
			logger.Logger().Errorf("save settings: %v", err)
		}
	}

	hotkeyCallbacks := hotkeys.Callbacks{
		Start: func() {
			fyne.Do(func() {
				startTimer(lastDuration, lastLabel)
			})
		},
		TogglePause: engine.TogglePause,
		Stop:        engine.Stop,
	}

	applyAutostart := func(enabled bool) {
		service := platform.NewService()
		if !enabled {
			if err := service.DisableAutostart(appName); err != nil {
				logger.Logger().Warnf("disable autostart: %v", err)
			}
			return
		}
		execPath, err := os.Executable()
		if err != nil {
			logger.Logger().Warnf("enable autostart: %v", err)
			return
		}
		if err := service.EnableAutostart(appName, execPath); err != nil {
			logger.Logger().Warnf("enable autostart: %v", err)
		}
	}

	panelWindow = panel.New(fyneApp, appName, panel.Callbacks{
		OnTogglePause: engine.TogglePause,
		OnStop:        engine.Stop,
	})

	popoverWindow = popover.New(fyneApp, appName, settings.Presets, popover.Callbacks{
		OnStart:       startTimer,
		OnTogglePause: engine.TogglePause,
		OnStop:        engine.Stop,
		OnSavePreset:  savePreset,
	})

	historyWindow = history.New(fyneApp, historyStore)

	sounds, err := player.Sounds()
	if err != nil {
		logger.Logger().Warnf("list sounds: %v", err)
	}

	prefsWindow = preferences.New(fyneApp, settings, sounds, func(updated preferences.Settings) {
		previous := settings
		settings = updated

		player.SetVolume(updated.Volume)
		engine.SetAlarmSound(updated.AlarmSound)
		trayManager.SetPresets(updated.Presets)
		popoverWindow.SetPresets(updated.Presets)

		if err := hotkeyManager.Apply(updated.StartHotkey, updated.PauseHotkey, updated.StopHotkey, hotkeyCallbacks); err != nil {
			logger.Logger().Warnf("apply hotkeys: %v", err)
		}
		if updated.Autostart != previous.Autostart {
			applyAutostart(updated.Autostart)
		}
		if err := saveSettings(updated); err != nil {
			logger.Logger().Errorf("save settings: %v", err)
		}
	})

	trayManager = tray.New(desktopApp, appName, settings.Presets, tray.Callbacks{
		OnStartPreset: func(preset model.Preset) {
			startTimer(preset.Duration(), preset.Name)
		},
		OnCustomTimer: func() {
			popoverWindow.Show()
		},
		OnTogglePause: engine.TogglePause,
		OnStop:        engine.Stop,
		OnShowPanel: func() {
			panelWindow.Toggle()
		},
		OnShowHistory: func() {
			historyWindow.Show()
		},
		OnPreferences: func() {
			prefsWindow.UpdateSettings(settings)
			prefsWindow.Show()
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})

	events := engine.Subscribe(8)
	go func() {
		previous := engine.Snapshot()
		for event := range events {
			if event.Type == countdown.EventStateChange {
				recordTransition(historyStore, previous, event)
			}
			snapshot := event.Snapshot
			eventType := event.Type
			previous = snapshot
			fyne.Do(func() {
				trayManager.Apply(snapshot)
				panelWindow.Apply(snapshot)
				popoverWindow.Apply(snapshot)
				if eventType == countdown.EventStateChange && snapshot.State == countdown.StateIdle && settings.ShowPanel {
					panelWindow.Hide()
				}
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		snapshot := engine.Snapshot()
		trayManager.Apply(snapshot)
		panelWindow.Apply(snapshot)
		popoverWindow.Apply(snapshot)

		if err := hotkeyManager.Apply(settings.StartHotkey, settings.PauseHotkey, settings.StopHotkey, hotkeyCallbacks); err != nil {
			logger.Logger().Warnf("register hotkeys: %v", err)
		}
	})

	if settings.Autostart {
		applyAutostart(true)
	}

	logger.Logger().Infof("%s %s started", appName, version.Short())
	fyneApp.Run()
	return nil
}

// recordTransition writes a history row when a state change ends a
// session: hitting zero completes it, while stopping or restarting a
// running timer cuts it short. Resuming from pause keeps the original
// start time, so it never counts as a restart.
func recordTransition(store *storage.History, previous countdown.Snapshot, event countdown.Event) {
	snapshot := event.Snapshot
	interrupted := previous.State == countdown.StateRunning || previous.State == countdown.StatePaused

	switch {
	case snapshot.State == countdown.StateAlarming && previous.State == countdown.StateRunning:
		saveRecord(store, model.SessionRecord{
			Label:     snapshot.Label,
			Total:     snapshot.Total,
			Elapsed:   snapshot.Total,
			StartedAt: snapshot.StartedAt,
			EndedAt:   event.At,
			Outcome:   model.OutcomeCompleted,
		})
	case snapshot.State == countdown.StateIdle && interrupted && previous.Total > 0:
		saveRecord(store, model.SessionRecord{
			Label:     previous.Label,
			Total:     previous.Total,
			Elapsed:   previous.Elapsed(),
			StartedAt: previous.StartedAt,
			EndedAt:   event.At,
			Outcome:   model.OutcomeStopped,
		})
	case snapshot.State == countdown.StateRunning && interrupted && previous.Total > 0 &&
		!snapshot.StartedAt.Equal(previous.StartedAt):
		saveRecord(store, model.SessionRecord{
			Label:     previous.Label,
			Total:     previous.Total,
			Elapsed:   previous.Elapsed(),
			StartedAt: previous.StartedAt,
			EndedAt:   event.At,
			Outcome:   model.OutcomeStopped,
		})
	}
}

func saveRecord(store *storage.History, record model.SessionRecord) {
	if err := store.Record(&record); err != nil {
		logger.Logger().Errorf("record session: %v", err)
	}
}
