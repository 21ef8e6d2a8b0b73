package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manfredi31/timerapplication/internal/core/model"
	"github.com/manfredi31/timerapplication/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Presets       []yamlPreset `yaml:"presets"`
	AlarmSound    string       `yaml:"alarm_sound"`
	VolumePercent *int         `yaml:"volume_percent"`
	StartHotkey   string       `yaml:"start_hotkey"`
	PauseHotkey   string       `yaml:"pause_hotkey"`
	StopHotkey    string       `yaml:"stop_hotkey"`
	ShowPanel     bool         `yaml:"show_panel"`
	Autostart     bool         `yaml:"autostart"`
}

type yamlPreset struct {
	Name    string `yaml:"name"`
	Minutes int    `yaml:"minutes"`
	Seconds int    `yaml:"seconds"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the default YAML location.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from an explicit YAML path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to an explicit YAML path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	volume := settings.Volume
	fileData := yamlSettings{
		Presets:       make([]yamlPreset, 0, len(settings.Presets)),
		AlarmSound:    settings.AlarmSound,
		VolumePercent: &volume,
		StartHotkey:   settings.StartHotkey,
		PauseHotkey:   settings.PauseHotkey,
		StopHotkey:    settings.StopHotkey,
		ShowPanel:     settings.ShowPanel,
		Autostart:     settings.Autostart,
	}
	for _, preset := range settings.Presets {
		fileData.Presets = append(fileData.Presets, yamlPreset{
			Name:    preset.Name,
			Minutes: preset.Minutes,
			Seconds: preset.Seconds,
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	presets := make([]model.Preset, 0, len(fileData.Presets))
	for _, preset := range fileData.Presets {
		candidate := model.Preset{
			Name:    preset.Name,
			Minutes: preset.Minutes,
			Seconds: preset.Seconds,
		}
		if candidate.Name == "" || candidate.Duration() <= 0 {
			continue
		}
		presets = append(presets, candidate)
	}
	if len(presets) > 0 {
		settings.Presets = presets
	}

	settings.AlarmSound = fileData.AlarmSound

	if fileData.VolumePercent != nil {
		volume := *fileData.VolumePercent
		if volume < 0 {
			volume = 0
		}
		if volume > 100 {
			volume = 100
		}
		settings.Volume = volume
	}

	if fileData.StartHotkey != "" {
		settings.StartHotkey = fileData.StartHotkey
	}
	if fileData.PauseHotkey != "" {
		settings.PauseHotkey = fileData.PauseHotkey
	}
	if fileData.StopHotkey != "" {
		settings.StopHotkey = fileData.StopHotkey
	}

	settings.ShowPanel = fileData.ShowPanel
	settings.Autostart = fileData.Autostart
}
