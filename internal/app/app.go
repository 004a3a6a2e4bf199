// Package app wires configuration, the service client, the local store and
// the notifier into one handle the UI and the CLI commands share.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/dori/clockin/internal/api"
	"github.com/dori/clockin/internal/config"
	"github.com/dori/clockin/internal/notify"
	"github.com/dori/clockin/internal/store"
)

// ErrNotConfigured is returned by New when no service credentials exist yet.
var ErrNotConfigured = fmt.Errorf("no credentials configured; run `clockin setup` first")

// App holds the application state and dependencies
type App struct {
	Settings config.Settings
	Client   *api.Client
	Store    *store.Store
	Notifier *notify.Notifier
	DataDir  string
	lockFile *flock.Flock
}

// New creates a new application instance. It refuses to start without stored
// credentials and holds an exclusive lock so two instances cannot write
// overlapping entries.
func New() (*App, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if creds == nil {
		return nil, ErrNotConfigured
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	a := &App{
		Settings: settings,
		Client:   api.New(creds),
		Notifier: notify.NewNotifier(),
		DataDir:  dataDir,
	}

	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	dbPath, err := store.DefaultPath()
	if err != nil {
		a.releaseLock()
		return nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.Store = st

	return a, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "clockin.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of clockin is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
