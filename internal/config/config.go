// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage backend names.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds the configuration for the application.
type Config struct {
	// Home is the data directory, default ~/.studyforge.
	Home string
	// StoreBackend selects the persistence backend: json or sqlite.
	StoreBackend string
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset.
func FromEnv() (*Config, error) {
	home := os.Getenv("STUDYFORGE_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, ".studyforge")
	}

	backend := os.Getenv("STUDYFORGE_STORE")
	if backend == "" {
		backend = StoreJSON
	}
	if backend != StoreJSON && backend != StoreSQLite {
		return nil, fmt.Errorf("STUDYFORGE_STORE must be %q or %q, got %q", StoreJSON, StoreSQLite, backend)
	}

	return &Config{
		Home:         home,
		StoreBackend: backend,
	}, nil
}

// PlansPath is the JSON store file.
func (c *Config) PlansPath() string {
	return filepath.Join(c.Home, "plans.json")
}

// DatabasePath is the SQLite store file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Home, "studyforge.db")
}

// SessionLogPath is the study-session activity log.
func (c *Config) SessionLogPath() string {
	return filepath.Join(c.Home, "sessions.log")
}
