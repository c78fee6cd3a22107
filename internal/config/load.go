package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/engine"
	"github.com/Faultbox/stracciatella/internal/logger"
	"github.com/Faultbox/stracciatella/internal/resources"
)

// EnsureExistence creates home and an empty ja2.json inside it when missing.
// An existing file is never touched, whatever it contains.
func (s *Store) EnsureExistence(home string) (string, error) {
	path := Path(home)
	if err := s.fs.MkdirAll(home, 0755); err != nil {
		return "", &IOError{Op: "creating", Path: path, Err: err}
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return home, nil
	}
	if err != nil {
		return "", &IOError{Op: "creating", Path: path, Err: err}
	}

	_, err = f.Write([]byte("{}"))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", &IOError{Op: "creating", Path: path, Err: err}
	}
	logger.Debug("created config file", zap.String("path", path))
	return home, nil
}

// Parse reads ja2.json from home. Absent keys keep their defaults and
// unknown keys are ignored. The returned home is always the given one.
func (s *Store) Parse(home string) (*engine.Options, error) {
	path := Path(home)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &IOError{Op: "reading", Path: path, Err: err}
	}

	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded config file", zap.String("path", path))
	return doc.options(home), nil
}

// rawField is a top-level value and the byte offset where it starts.
type rawField struct {
	raw    json.RawMessage
	offset int64
}

func decode(data []byte) (document, error) {
	doc := defaultDocument()
	// jsonc keeps the length of the input, so offsets stay valid.
	clean := jsonc.ToJSON(data)

	fields, err := topLevelFields(clean)
	if err != nil {
		return document{}, err
	}

	// Keys match exactly; encoding/json alone would fold case.
	targets := []struct {
		key string
		dst interface{}
	}{
		{"data_dir", &doc.DataDir},
		{"mods", &doc.Mods},
		{"res", &doc.Res},
		{"resversion", &doc.ResVersion},
		{"fullscreen", &doc.Fullscreen},
		{"debug", &doc.Debug},
		{"nosound", &doc.NoSound},
	}
	for _, target := range targets {
		f, ok := fields[target.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(f.raw, target.dst); err != nil {
			return document{}, fieldError(clean, target.key, f, err)
		}
	}
	return doc, nil
}

// topLevelFields splits a JSON object into its members. Anything other
// than an object is rejected.
func topLevelFields(data []byte) (map[string]rawField, error) {
	var members map[string]json.RawMessage
	err := json.Unmarshal(data, &members)

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		return nil, &ParseError{Msg: syntaxErr.Error(), Line: line, Column: col}
	}
	if err != nil || members == nil {
		start := int64(len(data) - len(bytes.TrimLeft(data, " \t\r\n")))
		end := start + int64(len(bytes.TrimSpace(data)))
		line, col := position(data, end)
		return nil, &ParseError{Msg: fmt.Sprintf("invalid type: %s, expected an object", kind(data[start:])), Line: line, Column: col}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	fields := make(map[string]rawField, len(members))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{Msg: err.Error()}
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &ParseError{Msg: err.Error()}
		}
		fields[key] = rawField{raw: raw, offset: dec.InputOffset() - int64(len(raw))}
	}
	return fields, nil
}

func kind(value []byte) string {
	if len(value) == 0 {
		return "nothing"
	}
	switch value[0] {
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '"':
		return "string"
	case '[':
		return "array"
	default:
		return "number"
	}
}

// fieldError turns a decode failure of one member into a ParseError
// positioned in the whole document.
func fieldError(data []byte, key string, f rawField, err error) *ParseError {
	end := f.offset + int64(len(f.raw))

	var (
		typeErr    *json.UnmarshalTypeError
		unknownErr *resources.UnknownError
		resErr     *engine.ResolutionError
	)
	var msg string
	offset := end
	switch {
	case errors.As(err, &typeErr):
		msg = fmt.Sprintf("invalid type: %s value in field %q, expected %s", typeErr.Value, key, typeErr.Type)
		offset = f.offset + typeErr.Offset
	case errors.As(err, &unknownErr):
		msg = unknownErr.Error()
	case errors.As(err, &resErr):
		msg = resErr.Error()
	default:
		msg = err.Error()
	}
	line, col := position(data, offset)
	return &ParseError{Msg: msg, Line: line, Column: col}
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	head := data[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := int(offset) - (bytes.LastIndexByte(head, '\n') + 1)
	return line, col
}
