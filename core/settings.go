package core

import (
	"fmt"
	"sort"
)

// Settings is the flat string-keyed, string-valued side table parsed
// from the caller-named settings block. It is independent of the
// expansion logic; one table is shared by the whole ensemble.
//
// A nil *Settings behaves as an empty table for all read operations.
type Settings struct {
	values map[string]string
}

// NewSettings returns an empty settings table.
func NewSettings() *Settings {
	return &Settings{values: make(map[string]string)}
}

// Set stores value under name, overwriting any prior value. Duplicate
// detection is the parser's concern, not the table's.
func (s *Settings) Set(name, value string) {
	s.values[name] = value
}

// Has reports whether a setting with the given name exists.
func (s *Settings) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[name]

	return ok
}

// Get retrieves the setting with the given name, or an error wrapping
// ErrSettingNotFound.
func (s *Settings) Get(name string) (string, error) {
	if s != nil {
		if v, ok := s.values[name]; ok {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrSettingNotFound, name)
}

// Len returns the number of settings.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// Names returns all setting names in lexicographic order.
func (s *Settings) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
