// Package capi exposes engine options to a host that cannot see Go memory.
//
// The host holds opaque Handles. Every Handle returned by Create must be
// given back to Release exactly once. Using a released or unknown Handle,
// or asking for a mod index past ModCount, panics: those are contract
// violations of the host, not runtime errors.
//
// A Table is not safe for concurrent use.
package capi

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/cli"
	"github.com/Faultbox/stracciatella/internal/config"
	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/launcher"
	"github.com/Faultbox/stracciatella/internal/logger"
	"github.com/Faultbox/stracciatella/internal/resources"
	"github.com/Faultbox/stracciatella/internal/stracciatella"
)

// Handle identifies options owned by a Table. Zero is never a valid handle.
type Handle uint64

// Table owns the options handed out to the host.
type Table struct {
	Env    stracciatella.Env
	Stdout io.Writer

	next    Handle
	options map[Handle]*engine.Options
}

// NewTable returns a Table working against env.
func NewTable(env stracciatella.Env) *Table {
	return &Table{
		Env:     env,
		Stdout:  os.Stdout,
		options: make(map[Handle]*engine.Options),
	}
}

// Create builds options from argv and registers them. On failure the
// error is printed to Stdout and the zero Handle is returned.
func (t *Table) Create(argv []string) (Handle, error) {
	opts, err := stracciatella.Build(t.Env, argv)
	if err != nil {
		fmt.Fprintln(t.Stdout, err)
		logger.Error("building engine options failed", zap.Error(err))
		return 0, err
	}
	if opts.ShowHelp {
		fmt.Fprint(t.Stdout, cli.Usage())
	}
	h := t.Register(opts)
	logger.Sugar.Debugf("engine options %d: %+v", h, *opts)
	return h, nil
}

// Register takes ownership of opts and returns its handle.
func (t *Table) Register(opts *engine.Options) Handle {
	if t.options == nil {
		t.options = make(map[Handle]*engine.Options)
	}
	t.next++
	t.options[t.next] = opts
	return t.next
}

// Release frees the options behind h. Releasing the zero Handle is a no-op.
func (t *Table) Release(h Handle) {
	if h == 0 {
		return
	}
	t.get(h)
	delete(t.options, h)
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return len(t.options)
}

// Options returns the options behind h.
func (t *Table) Options(h Handle) *engine.Options {
	return t.get(h)
}

func (t *Table) get(h Handle) *engine.Options {
	opts, ok := t.options[h]
	if !ok {
		panic(fmt.Sprintf("invalid engine options handle %d", h))
	}
	return opts
}

// Write persists the options behind h to ja2.json.
func (t *Table) Write(h Handle) error {
	return config.NewStore(t.Env.Fs).Write(t.get(h))
}

// StracciatellaHome returns the home directory.
func (t *Table) StracciatellaHome(h Handle) string {
	return t.get(h).StracciatellaHome
}

// VanillaDataDir returns the vanilla data directory.
func (t *Table) VanillaDataDir(h Handle) string {
	return t.get(h).VanillaDataDir
}

// SetVanillaDataDir sets the vanilla data directory.
func (t *Table) SetVanillaDataDir(h Handle, dir string) {
	t.get(h).VanillaDataDir = dir
}

// ModCount returns the number of enabled mods.
func (t *Table) ModCount(h Handle) uint32 {
	return uint32(len(t.get(h).Mods))
}

// Mod returns the mod at index.
func (t *Table) Mod(h Handle, index uint32) string {
	mods := t.get(h).Mods
	if int(index) >= len(mods) {
		panic(fmt.Sprintf("Invalid mod index for game options %d", index))
	}
	return mods[index]
}

// ResolutionX returns the screen width.
func (t *Table) ResolutionX(h Handle) uint16 {
	return t.get(h).Resolution.Width
}

// ResolutionY returns the screen height.
func (t *Table) ResolutionY(h Handle) uint16 {
	return t.get(h).Resolution.Height
}

// SetResolution sets the screen size. Zero dimensions are rejected.
func (t *Table) SetResolution(h Handle, x, y uint16) error {
	opts := t.get(h)
	res := engine.Resolution{Width: x, Height: y}
	if !res.Valid() {
		return &engine.ResolutionError{Value: res.String(), Reason: "dimensions must be greater than zero"}
	}
	opts.Resolution = res
	return nil
}

// ResourceVersion returns the resource version.
func (t *Table) ResourceVersion(h Handle) resources.ResourceVersion {
	return t.get(h).ResourceVersion
}

// SetResourceVersion sets the resource version by name. An unknown name
// leaves the options unchanged and returns an error.
func (t *Table) SetResourceVersion(h Handle, name string) error {
	opts := t.get(h)
	v, err := resources.Parse(name)
	if err != nil {
		return err
	}
	opts.ResourceVersion = v
	return nil
}

func (t *Table) ShouldRunUnittests(h Handle) bool { return t.get(h).RunUnittests }

func (t *Table) ShouldShowHelp(h Handle) bool { return t.get(h).ShowHelp }

func (t *Table) ShouldRunEditor(h Handle) bool { return t.get(h).RunEditor }

func (t *Table) ShouldStartInFullscreen(h Handle) bool { return t.get(h).StartInFullscreen }

func (t *Table) SetStartInFullscreen(h Handle, v bool) { t.get(h).StartInFullscreen = v }

func (t *Table) ShouldStartInWindow(h Handle) bool { return t.get(h).StartInWindow }

func (t *Table) ShouldStartInDebugMode(h Handle) bool { return t.get(h).StartInDebugMode }

func (t *Table) ShouldStartWithoutSound(h Handle) bool { return t.get(h).StartWithoutSound }

func (t *Table) SetStartWithoutSound(h Handle, v bool) { t.get(h).StartWithoutSound = v }

// ResourceVersionString returns the name of the resource version with the
// given numeric value, or "ResourceVersion(n)" when there is none.
func ResourceVersionString(value int) string {
	if value < 0 || value >= len(resources.All()) {
		return fmt.Sprintf("ResourceVersion(%d)", value)
	}
	return resources.ResourceVersion(value).String()
}

// FindJA2Executable derives the game executable from the launcher path.
func FindJA2Executable(launcherPath string) string {
	return launcher.FindExecutable(launcherPath)
}
