package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// HomeResolver finds the stracciatella home directory. The base directory
// lookups are injected so callers can resolve without the real environment.
type HomeResolver struct {
	// Override, when set, is returned as is.
	Override string
	GOOS     string
	// UserHomeDir is the base on unix-like systems.
	UserHomeDir func() (string, error)
	// AppDataDir is the base on windows.
	AppDataDir func() (string, error)
}

// DefaultHomeResolver resolves against the running process environment.
func DefaultHomeResolver() *HomeResolver {
	return &HomeResolver{
		GOOS:        runtime.GOOS,
		UserHomeDir: os.UserHomeDir,
		AppDataDir:  os.UserConfigDir,
	}
}

// Find returns ~/.ja2 on unix-like systems and <AppData>/JA2 on windows.
// The directory is not created.
func (r *HomeResolver) Find() (string, error) {
	if r.Override != "" {
		return r.Override, nil
	}
	base, sub := r.UserHomeDir, ".ja2"
	if r.GOOS == "windows" {
		base, sub = r.AppDataDir, "JA2"
	}
	if base == nil {
		return "", ErrHomeNotFound
	}

	dir, err := base()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeNotFound, err)
	}
	if dir == "" {
		return "", ErrHomeNotFound
	}
	return filepath.Join(dir, sub), nil
}
