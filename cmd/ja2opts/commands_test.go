package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stracciatella/internal/config"
	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/resources"
)

const home = "/srv/ja2"

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmdWithFs(fs)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--home", home}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seeded(t *testing.T, contents string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(home, 0755))
	require.NoError(t, afero.WriteFile(fs, config.Path(home), []byte(contents), 0644))
	return fs
}

func TestShowYAML(t *testing.T) {
	fs := seeded(t, `{ "data_dir": "/games/ja2", "res": "1024x768" }`)

	out, err := run(t, fs, "show", "--", "--resversion", "POLISH")
	require.NoError(t, err)

	var got engine.Options
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "/games/ja2", got.VanillaDataDir)
	assert.Equal(t, home, got.StracciatellaHome)
	assert.Equal(t, engine.Resolution{Width: 1024, Height: 768}, got.Resolution)
	assert.Equal(t, resources.Polish, got.ResourceVersion)
	assert.Contains(t, out, "res: 1024x768")
}

func TestShowJSON(t *testing.T) {
	fs := seeded(t, `{ "data_dir": "/games/ja2" }`)

	out, err := run(t, fs, "show", "--format", "json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n  \"data_dir\": \"/games/ja2\""))
}

func TestShowUnknownFormat(t *testing.T) {
	fs := seeded(t, `{ "data_dir": "/games/ja2" }`)

	_, err := run(t, fs, "show", "--format", "toml")
	assert.Error(t, err)
}

func TestShowMissingDataDir(t *testing.T) {
	_, err := run(t, seeded(t, `{}`), "show")
	assert.ErrorIs(t, err, engine.ErrMissingDataDir)
}

func TestSave(t *testing.T) {
	fs := seeded(t, `{ "data_dir": "/games/ja2" }`)

	out, err := run(t, fs, "save", "--", "--mods", "a,b", "--fullscreen", "--editor")
	require.NoError(t, err)
	assert.Contains(t, out, config.Path(home))

	opts, err := config.NewStore(fs).Parse(home)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, opts.Mods)
	assert.True(t, opts.StartInFullscreen)
	assert.False(t, opts.RunEditor)
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "init")
	require.NoError(t, err)
	assert.Equal(t, config.Path(home)+"\n", out)

	content, err := afero.ReadFile(fs, config.Path(home))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
}

func TestExe(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "exe", "/home/test/ja2-launcher")
	require.NoError(t, err)
	assert.Equal(t, "/home/test/ja2\n", out)

	_, err = run(t, afero.NewMemMapFs(), "exe")
	assert.Error(t, err)
}
