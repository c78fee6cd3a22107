package config

import (
	"errors"
	"fmt"
)

// ErrHomeNotFound is returned when the platform offers no base directory.
var ErrHomeNotFound = errors.New("could not determine stracciatella home directory")

// IOError wraps a filesystem failure while handling the config file.
type IOError struct {
	Op   string // "reading", "writing" or "creating"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Error %s %s config file: %v", e.Op, FileName, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports malformed or schema-violating config contents.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Msg    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("Error parsing %s config file: %s", FileName, e.Msg)
	}
	return fmt.Sprintf("Error parsing %s config file: %s at line %d column %d", FileName, e.Msg, e.Line, e.Column)
}
