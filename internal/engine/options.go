// Package engine holds the merged options record handed to the game engine.
package engine

import (
	"errors"

	"github.com/Faultbox/stracciatella/internal/resources"
)

// ErrMissingDataDir is returned when no vanilla data directory was configured.
var ErrMissingDataDir = errors.New("Vanilla data directory has to be set either in config file or per command line switch")

// Options holds every setting the engine is started with.
type Options struct {
	StracciatellaHome string                    `yaml:"stracciatella_home"`
	VanillaDataDir    string                    `yaml:"data_dir"`
	Mods              []string                  `yaml:"mods"`
	Resolution        Resolution                `yaml:"res"`
	ResourceVersion   resources.ResourceVersion `yaml:"resversion"`

	// Only reachable from the command line, never persisted.
	ShowHelp      bool `yaml:"show_help"`
	RunUnittests  bool `yaml:"run_unittests"`
	RunEditor     bool `yaml:"run_editor"`
	StartInWindow bool `yaml:"start_in_window"`

	StartInFullscreen bool `yaml:"start_in_fullscreen"`
	StartInDebugMode  bool `yaml:"start_in_debug_mode"`
	StartWithoutSound bool `yaml:"start_without_sound"`
}

// Default returns Options with the built-in defaults.
func Default() *Options {
	return &Options{
		Mods:            []string{},
		Resolution:      DefaultResolution,
		ResourceVersion: resources.English,
	}
}

// Validate checks the merged options before they are handed to the engine.
func (o *Options) Validate() error {
	if o.VanillaDataDir == "" {
		return ErrMissingDataDir
	}
	if !o.Resolution.Valid() {
		return &ResolutionError{Value: o.Resolution.String()}
	}
	if !o.ResourceVersion.Valid() {
		return &resources.UnknownError{Name: o.ResourceVersion.String()}
	}
	return nil
}
