package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultResolution is used when neither config nor command line set one.
var DefaultResolution = Resolution{Width: 640, Height: 480}

// Resolution is a screen size in pixels.
type Resolution struct {
	Width  uint16
	Height uint16
}

// ResolutionError reports a malformed WIDTHxHEIGHT token.
type ResolutionError struct {
	Value  string
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid resolution %q, expected WIDTHxHEIGHT", e.Value)
	}
	return fmt.Sprintf("invalid resolution %q, expected WIDTHxHEIGHT: %s", e.Value, e.Reason)
}

// ParseResolution parses a "WIDTHxHEIGHT" token. Both halves must be
// positive integers that fit in 16 bits.
func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Resolution{}, &ResolutionError{Value: s}
	}

	var dims [2]uint16
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Resolution{}, &ResolutionError{Value: s, Reason: fmt.Sprintf("%q is not a number between 1 and 65535", p)}
		}
		if n == 0 {
			return Resolution{}, &ResolutionError{Value: s, Reason: "dimensions must be greater than zero"}
		}
		dims[i] = uint16(n)
	}
	return Resolution{Width: dims[0], Height: dims[1]}, nil
}

// Valid reports whether both dimensions are non-zero.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// String formats r as "WIDTHxHEIGHT".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// MarshalText implements encoding.TextMarshaler.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resolution) UnmarshalText(text []byte) error {
	parsed, err := ParseResolution(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
