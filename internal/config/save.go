package config

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/logger"
)

// Write stores the persistable subset of opts in ja2.json inside
// opts.StracciatellaHome, replacing whatever is there.
func (s *Store) Write(opts *engine.Options) error {
	path := Path(opts.StracciatellaHome)

	data, err := Encode(opts)
	if err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}

	if err := s.fs.MkdirAll(opts.StracciatellaHome, 0755); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}

	logger.Debug("wrote config file", zap.String("path", path))
	return nil
}

// Encode renders the persistable subset of opts with two-space indentation
// and no trailing newline.
func Encode(opts *engine.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(documentFrom(opts)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
