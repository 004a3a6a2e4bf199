package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/dori/clockin/internal/model"
)

// SettingsFile is the name of the TOML settings document.
const SettingsFile = "settings.toml"

// Settings is the persisted application configuration. The work schedule is
// the only setting today; loaders always return a fully populated value.
type Settings struct {
	WorkSchedule model.WorkSchedule `toml:"work_schedule"`
}

// DefaultSettings returns settings with the built-in work schedule.
func DefaultSettings() Settings {
	return Settings{WorkSchedule: model.DefaultWorkSchedule()}
}

func settingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}

// LoadSettings reads the settings file, merging defaults over any missing
// fields. A missing file means defaults, not an error.
func LoadSettings() (Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return loadSettingsFrom(path)
}

func loadSettingsFrom(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	var loaded Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return s, err
	}
	merge := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	merge(&s.WorkSchedule.Morning.Start, loaded.WorkSchedule.Morning.Start)
	merge(&s.WorkSchedule.Morning.End, loaded.WorkSchedule.Morning.End)
	merge(&s.WorkSchedule.Afternoon.Start, loaded.WorkSchedule.Afternoon.Start)
	merge(&s.WorkSchedule.Afternoon.End, loaded.WorkSchedule.Afternoon.End)
	return s, nil
}

// SaveSettings writes the settings file.
func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	return saveSettingsTo(path, s)
}

func saveSettingsTo(path string, s Settings) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
