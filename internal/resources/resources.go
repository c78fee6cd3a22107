// Package resources defines the localized variants of the original game data.
package resources

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceVersion identifies the localization of the vanilla game assets.
type ResourceVersion uint8

// Known resource versions. The numeric values are part of the C ABI.
const (
	Dutch ResourceVersion = iota
	English
	French
	German
	Italian
	Polish
	Russian
	RussianGold
)

var names = [...]string{
	Dutch:       "DUTCH",
	English:     "ENGLISH",
	French:      "FRENCH",
	German:      "GERMAN",
	Italian:     "ITALIAN",
	Polish:      "POLISH",
	Russian:     "RUSSIAN",
	RussianGold: "RUSSIAN_GOLD",
}

// All returns every resource version in declaration order.
func All() []ResourceVersion {
	all := make([]ResourceVersion, len(names))
	for i := range names {
		all[i] = ResourceVersion(i)
	}
	return all
}

// Valid reports whether v is a member of the known set.
func (v ResourceVersion) Valid() bool {
	return int(v) < len(names)
}

// String returns the uppercase name of v.
func (v ResourceVersion) String() string {
	if !v.Valid() {
		return fmt.Sprintf("ResourceVersion(%d)", uint8(v))
	}
	return names[v]
}

// UnknownError is returned when a name matches no resource version.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return fmt.Sprintf("unknown variant `%s`, expected one of %s", e.Name, strings.Join(quoted, ", "))
}

// Parse maps an exact, case-sensitive name to its resource version.
func Parse(name string) (ResourceVersion, error) {
	for i, n := range names {
		if n == name {
			return ResourceVersion(i), nil
		}
	}
	return English, &UnknownError{Name: name}
}

// MarshalJSON encodes v as its name.
func (v ResourceVersion) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid resource version %d", uint8(v))
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a name into v.
func (v *ResourceVersion) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("invalid type: %s, expected a resource version name", data)
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as its name.
func (v ResourceVersion) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a name into v.
func (v *ResourceVersion) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := Parse(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
