package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFindUnixLike(t *testing.T) {
	r := &HomeResolver{
		GOOS:        "linux",
		UserHomeDir: func() (string, error) { return "/home/test", nil },
	}

	got, err := r.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/home/test", ".ja2"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFindWindows(t *testing.T) {
	r := &HomeResolver{
		GOOS:        "windows",
		UserHomeDir: func() (string, error) { return "/should/not/be/used", nil },
		AppDataDir:  func() (string, error) { return "/appdata", nil },
	}

	got, err := r.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/appdata", "JA2"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFindHomeNotFound(t *testing.T) {
	tests := []struct {
		name string
		r    *HomeResolver
	}{
		{
			name: "lookup fails",
			r: &HomeResolver{
				GOOS:        "linux",
				UserHomeDir: func() (string, error) { return "", errors.New("$HOME is not defined") },
			},
		},
		{
			name: "empty base",
			r: &HomeResolver{
				GOOS:        "darwin",
				UserHomeDir: func() (string, error) { return "", nil },
			},
		},
		{
			name: "no provider",
			r:    &HomeResolver{GOOS: "windows"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.r.Find()
			if !errors.Is(err, ErrHomeNotFound) {
				t.Errorf("expected ErrHomeNotFound, got %v", err)
			}
		})
	}
}

func TestDefaultHomeResolver(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("AppData", home)

	got, err := DefaultHomeResolver().Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestFindOverride(t *testing.T) {
	r := &HomeResolver{
		Override:    "/srv/ja2",
		GOOS:        "linux",
		UserHomeDir: func() (string, error) { return "", errors.New("unused") },
	}

	got, err := r.Find()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/srv/ja2" {
		t.Errorf("expected /srv/ja2, got %s", got)
	}
}
