package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MailFile is the name of the mail credentials document.
const MailFile = "mail.json"

// MailConfig holds the self-addressed reminder mail account. The app password
// is a Gmail application password, stored after verification.
type MailConfig struct {
	Email       string `json:"email"`
	AppPassword string `json:"appPassword"`
}

func mailPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, MailFile), nil
}

// LoadMailConfig returns the stored mail configuration, or nil when none
// exists.
func LoadMailConfig() (*MailConfig, error) {
	path, err := mailPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg MailConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveMailConfig writes the mail document with owner-only permissions.
func SaveMailConfig(cfg *MailConfig) error {
	path, err := mailPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
