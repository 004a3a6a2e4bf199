package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// CredentialsFile is the name of the service credentials document.
const CredentialsFile = "credentials.json"

// Credential types. Basic carries a company API key; OAuth carries a token
// pair refreshed by the API client.
const (
	CredentialBasic = "basic"
	CredentialOAuth = "oauth"
)

// Credentials authenticates against the HR service. The document is opaque to
// everything but the API client.
type Credentials struct {
	Type          string `json:"type"`
	CompanyDomain string `json:"companyDomain"`

	// Basic
	APIKey string `json:"apiKey,omitempty"`

	// OAuth
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresAt    int64  `json:"expiresAtMs,omitempty"`
}

// TokenExpired reports whether an OAuth access token needs refreshing,
// with a one-minute safety margin.
func (c *Credentials) TokenExpired(now time.Time) bool {
	if c.Type != CredentialOAuth {
		return false
	}
	return now.UnixMilli() >= c.ExpiresAt-60_000
}

func credentialsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CredentialsFile), nil
}

// LoadCredentials returns stored credentials, or nil when none exist.
// Environment credentials (CLOCKIN_COMPANY_DOMAIN / CLOCKIN_API_KEY) take
// precedence over the file.
func LoadCredentials() (*Credentials, error) {
	if domain, key := os.Getenv("CLOCKIN_COMPANY_DOMAIN"), os.Getenv("CLOCKIN_API_KEY"); domain != "" && key != "" {
		return &Credentials{Type: CredentialBasic, CompanyDomain: domain, APIKey: key}, nil
	}

	path, err := credentialsPath()
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
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// SaveCredentials writes the credentials document with owner-only permissions.
func SaveCredentials(creds *Credentials) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
