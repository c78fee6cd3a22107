// Package config locates, reads and writes the persisted ja2.json settings.
package config

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/resources"
)

// FileName is the name of the config file inside the home directory.
const FileName = "ja2.json"

// document is the on-disk layout of ja2.json. Field order is the write order.
// Command-line-only switches have no field here, so they are dropped on read.
type document struct {
	DataDir    string                    `json:"data_dir"`
	Mods       []string                  `json:"mods"`
	Res        engine.Resolution         `json:"res"`
	ResVersion resources.ResourceVersion `json:"resversion"`
	Fullscreen bool                      `json:"fullscreen"`
	Debug      bool                      `json:"debug"`
	NoSound    bool                      `json:"nosound"`
}

func defaultDocument() document {
	def := engine.Default()
	return document{
		DataDir:    def.VanillaDataDir,
		Mods:       def.Mods,
		Res:        def.Resolution,
		ResVersion: def.ResourceVersion,
		Fullscreen: def.StartInFullscreen,
		Debug:      def.StartInDebugMode,
		NoSound:    def.StartWithoutSound,
	}
}

func documentFrom(opts *engine.Options) document {
	mods := opts.Mods
	if mods == nil {
		mods = []string{}
	}
	return document{
		DataDir:    opts.VanillaDataDir,
		Mods:       mods,
		Res:        opts.Resolution,
		ResVersion: opts.ResourceVersion,
		Fullscreen: opts.StartInFullscreen,
		Debug:      opts.StartInDebugMode,
		NoSound:    opts.StartWithoutSound,
	}
}

func (d document) options(home string) *engine.Options {
	opts := engine.Default()
	opts.StracciatellaHome = home
	opts.VanillaDataDir = d.DataDir
	opts.Mods = d.Mods
	if opts.Mods == nil {
		opts.Mods = []string{}
	}
	opts.Resolution = d.Res
	opts.ResourceVersion = d.ResVersion
	opts.StartInFullscreen = d.Fullscreen
	opts.StartInDebugMode = d.Debug
	opts.StartWithoutSound = d.NoSound
	return opts
}

// Store reads and writes ja2.json on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Path returns the config file location inside home.
func Path(home string) string {
	return filepath.Join(home, FileName)
}
