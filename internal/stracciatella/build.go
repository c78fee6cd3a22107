// Package stracciatella merges defaults, ja2.json and the command line into
// the engine options.
package stracciatella

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/cli"
	"github.com/Faultbox/stracciatella/internal/config"
	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/logger"
)

// Env is what the pipeline reads from its surroundings.
type Env struct {
	Fs   afero.Fs
	Home *config.HomeResolver
}

// DefaultEnv uses the OS filesystem and the process environment.
func DefaultEnv() Env {
	return Env{
		Fs:   afero.NewOsFs(),
		Home: config.DefaultHomeResolver(),
	}
}

// Build resolves the home directory, makes sure ja2.json exists, loads it,
// applies argv (argv[0] is the program name) and validates the result.
// The first failing stage ends the pipeline.
func Build(env Env, argv []string) (*engine.Options, error) {
	if env.Home == nil {
		env.Home = config.DefaultHomeResolver()
	}
	store := config.NewStore(env.Fs)

	home, err := env.Home.Find()
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved stracciatella home", zap.String("path", home))

	if _, err := store.EnsureExistence(home); err != nil {
		return nil, err
	}

	opts, err := store.Parse(home)
	if err != nil {
		return nil, err
	}

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	if err := cli.ParseArgs(opts, args); err != nil {
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("engine options ready",
		zap.String("data_dir", opts.VanillaDataDir),
		zap.Strings("mods", opts.Mods),
		zap.Stringer("res", opts.Resolution),
		zap.Stringer("resversion", opts.ResourceVersion),
	)
	return opts, nil
}
