package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"focusdesk/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "settings.yaml"
	historyFileName  = "history.db"
)

type yamlSettings struct {
	NotifyOnComplete *bool  `yaml:"notify_on_complete,omitempty"`
	RecordHistory    *bool  `yaml:"record_history,omitempty"`
	DarkMode         bool   `yaml:"dark_mode"`
	HistoryPath      string `yaml:"history_path,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return settings, err
	}

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

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		NotifyOnComplete: &settings.NotifyOnComplete,
		RecordHistory:    &settings.RecordHistory,
		DarkMode:         settings.DarkMode,
		HistoryPath:      strings.TrimSpace(settings.HistoryPath),
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

// HistoryPath returns the history database location for settings, falling
// back to the application config directory.
func HistoryPath(appName string, settings preferences.Settings) (string, error) {
	if path := strings.TrimSpace(settings.HistoryPath); path != "" {
		return path, nil
	}
	return resolveConfigPath(appName, historyFileName)
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.NotifyOnComplete != nil {
		settings.NotifyOnComplete = *fileData.NotifyOnComplete
	}
	if fileData.RecordHistory != nil {
		settings.RecordHistory = *fileData.RecordHistory
	}
	settings.DarkMode = fileData.DarkMode
	settings.HistoryPath = strings.TrimSpace(fileData.HistoryPath)
}
