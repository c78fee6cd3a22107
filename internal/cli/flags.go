// Package cli parses the engine command line on top of loaded options.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/logger"
	"github.com/Faultbox/stracciatella/internal/resources"
)

// Flag names.
const (
	FlagDataDir    = "datadir"
	FlagMods       = "mods"
	FlagRes        = "res"
	FlagResVersion = "resversion"
	FlagFullscreen = "fullscreen"
	FlagWindow     = "window"
	FlagDebug      = "debug"
	FlagNoSound    = "nosound"
	FlagUnittests  = "unittests"
	FlagEditor     = "editor"
	FlagHelp       = "help"
)

// Brief is the first line of the usage text.
const Brief = "Usage: ja2 [options]"

// ArgumentError reports an unknown switch or a malformed switch value.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// NewFlagSet defines the engine switches.
func NewFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("ja2", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)

	flags.String(FlagDataDir, "", "Set path for data directory")
	flags.StringArray(FlagMods, nil, "Start one or more mods (repeatable or comma separated)")
	flags.String(FlagRes, "", "Screen resolution, e.g. 800x600. Default value is 640x480")
	flags.String(FlagResVersion, "", "Version of the game resources. Possible values: "+versionNames())
	flags.Bool(FlagFullscreen, false, "Start the game in the fullscreen mode")
	flags.Bool(FlagWindow, false, "Start the game in a window")
	flags.Bool(FlagDebug, false, "Enable Debug Mode")
	flags.Bool(FlagNoSound, false, "Turn the sound and music off")
	flags.Bool(FlagUnittests, false, "Perform unit tests")
	flags.Bool(FlagEditor, false, "Start the map editor (Editor.slf is required)")
	flags.BoolP(FlagHelp, "h", false, "Print this help menu")

	return flags
}

func versionNames() string {
	all := resources.All()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}

// Usage returns the help text printed for --help.
func Usage() string {
	return Brief + "\n\nOptions:\n" + NewFlagSet().FlagUsages()
}

// ParseArgs overlays the switches present in args (program name excluded)
// onto opts. Absent switches leave opts untouched. A help request sets
// ShowHelp and skips every other switch. Values applied before an error
// are kept.
func ParseArgs(opts *engine.Options, args []string) error {
	flags := NewFlagSet()
	if err := flags.Parse(args); err != nil {
		return &ArgumentError{Msg: err.Error()}
	}

	if help, _ := flags.GetBool(FlagHelp); help {
		opts.ShowHelp = true
		return nil
	}

	if flags.NArg() > 0 {
		return &ArgumentError{Msg: fmt.Sprintf("Unknown arguments: '%s'.", strings.Join(flags.Args(), " "))}
	}

	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = apply(opts, flags, f.Name)
		if err == nil {
			logger.Debug("command line override", zap.String("flag", f.Name), zap.String("value", f.Value.String()))
		}
	})
	return err
}

// splitMods flattens repeated and comma separated mod lists. Names are
// taken verbatim; empty entries are dropped.
func splitMods(values []string) []string {
	mods := []string{}
	for _, v := range values {
		for _, m := range strings.Split(v, ",") {
			if m != "" {
				mods = append(mods, m)
			}
		}
	}
	return mods
}

func apply(opts *engine.Options, flags *pflag.FlagSet, name string) error {
	switch name {
	case FlagDataDir:
		opts.VanillaDataDir, _ = flags.GetString(name)
	case FlagMods:
		values, _ := flags.GetStringArray(name)
		opts.Mods = splitMods(values)
	case FlagRes:
		value, _ := flags.GetString(name)
		res, err := engine.ParseResolution(value)
		if err != nil {
			return &ArgumentError{Msg: fmt.Sprintf("Resolution argument not in the expected format: %v", err)}
		}
		opts.Resolution = res
	case FlagResVersion:
		value, _ := flags.GetString(name)
		version, err := resources.Parse(value)
		if err != nil {
			return &ArgumentError{Msg: fmt.Sprintf("Resource version argument is invalid: %v", err)}
		}
		opts.ResourceVersion = version
	case FlagFullscreen:
		opts.StartInFullscreen, _ = flags.GetBool(name)
	case FlagWindow:
		opts.StartInWindow, _ = flags.GetBool(name)
	case FlagDebug:
		opts.StartInDebugMode, _ = flags.GetBool(name)
	case FlagNoSound:
		opts.StartWithoutSound, _ = flags.GetBool(name)
	case FlagUnittests:
		opts.RunUnittests, _ = flags.GetBool(name)
	case FlagEditor:
		opts.RunEditor, _ = flags.GetBool(name)
	}
	return nil
}
