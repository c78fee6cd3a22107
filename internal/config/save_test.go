package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/resources"
)

func TestWritePrettyJSON(t *testing.T) {
	store := storeWith(t, "Invalid JSON")
	opts := engine.Default()
	opts.StracciatellaHome = home
	opts.Resolution = engine.Resolution{Width: 100, Height: 100}

	require.NoError(t, store.Write(opts))

	content, err := afero.ReadFile(store.fs, Path(home))
	require.NoError(t, err)
	assert.Equal(t, `{
  "data_dir": "",
  "mods": [],
  "res": "100x100",
  "resversion": "ENGLISH",
  "fullscreen": false,
  "debug": false,
  "nosound": false
}`, string(content))
}

func TestWriteRoundTrip(t *testing.T) {
	store := storeWith(t, "Invalid JSON")
	opts := engine.Default()
	opts.StracciatellaHome = home
	opts.VanillaDataDir = "/games/ja2 & co"
	opts.Mods = []string{"from-russia-with-love", "v1.13"}
	opts.Resolution = engine.Resolution{Width: 100, Height: 100}
	opts.ResourceVersion = resources.RussianGold
	opts.StartInFullscreen = true
	opts.StartWithoutSound = true
	opts.ShowHelp = true
	opts.RunEditor = true

	require.NoError(t, store.Write(opts))

	got, err := store.Parse(home)
	require.NoError(t, err)

	assert.Equal(t, opts.VanillaDataDir, got.VanillaDataDir)
	assert.Equal(t, opts.Mods, got.Mods)
	assert.Equal(t, opts.Resolution, got.Resolution)
	assert.Equal(t, opts.ResourceVersion, got.ResourceVersion)
	assert.True(t, got.StartInFullscreen)
	assert.False(t, got.StartInDebugMode)
	assert.True(t, got.StartWithoutSound)
	assert.False(t, got.ShowHelp, "help is never persisted")
	assert.False(t, got.RunEditor, "editor is never persisted")
	assert.Equal(t, home, got.StracciatellaHome)
}

func TestWriteNilModsAsEmptyList(t *testing.T) {
	opts := engine.Default()
	opts.Mods = nil

	data, err := Encode(opts)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mods": []`)
}

func TestWriteFailure(t *testing.T) {
	store := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	opts := engine.Default()
	opts.StracciatellaHome = home

	err := store.Write(opts)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "writing", ioErr.Op)
}
