// Package lines holds the stored program: numbered lines kept in ascending
// order and charged against the program half of an arena.
package lines

import (
	"errors"
	"fmt"

	"minibasic/pkg/arena"

	"github.com/google/btree"
)

const (
	MinNumber = 1
	MaxNumber = 65535

	// header bytes charged per stored line (number and length)
	lineOverhead = 4
)

var ErrInvalidNumber = errors.New("invalid line number")

type line struct {
	Number int
	Text   string
}

func (l line) Less(than btree.Item) bool {
	return l.Number < than.(line).Number
}

// cost is the number of arena bytes a line occupies, terminator included
func (l line) cost() int {
	return lineOverhead + len(l.Text) + 1
}

type Store struct {
	tree  *btree.BTree
	arena *arena.Arena
}

// NewStore creates an empty line store backed by a
func NewStore(a *arena.Arena) *Store {
	return &Store{
		tree:  btree.New(4),
		arena: a,
	}
}

// ValidNumber reports whether n can be used as a line number
func ValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// First returns the lowest stored line number
func (s *Store) First() (int, bool) {
	item := s.tree.Min()
	if item == nil {
		return 0, false
	}

	return item.(line).Number, true
}

// Next returns the lowest stored line number strictly greater than after
func (s *Store) Next(after int) (int, bool) {
	var (
		found int
		ok    bool
	)
	s.tree.AscendGreaterOrEqual(line{Number: after + 1}, func(item btree.Item) bool {
		found = item.(line).Number
		ok = true
		return false
	})

	return found, ok
}

// Get returns the text of line n
func (s *Store) Get(n int) (string, bool) {
	item := s.tree.Get(line{Number: n})
	if item == nil {
		return "", false
	}

	return item.(line).Text, true
}

// Store saves text under number n, replacing any previous line n
func (s *Store) Store(n int, text string) error {
	if !ValidNumber(n) {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, n)
	}

	next := line{Number: n, Text: text}
	delta := next.cost()
	if prev := s.tree.Get(line{Number: n}); prev != nil {
		delta -= prev.(line).cost()
	}

	if s.arena != nil {
		if err := s.arena.ReserveProgram(delta); err != nil {
			return err
		}
	}

	s.tree.ReplaceOrInsert(next)
	return nil
}

// Delete removes line n. Deleting a missing line is a no-op.
func (s *Store) Delete(n int) {
	item := s.tree.Delete(line{Number: n})
	if item == nil {
		return
	}

	if s.arena != nil {
		s.arena.ReleaseProgram(item.(line).cost())
	}
}

// List visits every line in ascending order
func (s *Store) List(visit func(n int, text string)) {
	s.tree.Ascend(func(item btree.Item) bool {
		l := item.(line)
		visit(l.Number, l.Text)
		return true
	})
}

// Len returns the number of stored lines
func (s *Store) Len() int {
	return s.tree.Len()
}

// Clear removes every line
func (s *Store) Clear() {
	s.tree.Clear(false)
	if s.arena != nil {
		s.arena.ResetProgram()
	}
}
