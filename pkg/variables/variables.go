// Package variables binds BASIC variable names to their current values.
package variables

import (
	"sort"
	"strings"
)

type Store struct {
	numeric map[string]float64
	text    map[string]string
}

// NewStore creates an empty variable store
func NewStore() *Store {
	s := &Store{}
	s.Clear()
	return s
}

func normalize(name string) string {
	return strings.ToUpper(name)
}

// Numeric returns the value of a numeric variable, 0 if it was never assigned
func (s *Store) Numeric(name string) float64 {
	return s.numeric[normalize(name)]
}

// SetNumeric assigns a numeric variable
func (s *Store) SetNumeric(name string, v float64) {
	s.numeric[normalize(name)] = v
}

// Text returns the value of a text variable, "" if it was never assigned
func (s *Store) Text(name string) string {
	return s.text[normalize(name)]
}

// SetText assigns a text variable
func (s *Store) SetText(name string, v string) {
	s.text[normalize(name)] = v
}

// Clear forgets every variable
func (s *Store) Clear() {
	s.numeric = make(map[string]float64)
	s.text = make(map[string]string)
}

// Names returns all assigned variable names in sorted order
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.numeric)+len(s.text))
	for name := range s.numeric {
		names = append(names, name)
	}
	for name := range s.text {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
