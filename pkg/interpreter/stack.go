package interpreter

import (
	"minibasic/pkg/arena"
)

// Stack is the control-flow stack. Loop and call frames interleave on it and
// every push is charged against the arena.
type Stack struct {
	a     []Frame
	arena *arena.Arena
}

// NewStack creates a new stack drawing on a
func NewStack(a *arena.Arena) *Stack {
	return &Stack{
		a:     make([]Frame, 0, 8),
		arena: a,
	}
}

// Push adds a frame to the top of the stack
func (s *Stack) Push(f Frame) error {
	if err := s.arena.PushStack(f.Size()); err != nil {
		return err
	}

	s.a = append(s.a, f)
	return nil
}

// Pop removes and returns the top frame, nil when empty
func (s *Stack) Pop() Frame {
	if len(s.a) < 1 {
		return nil
	}

	f := s.a[len(s.a)-1]
	s.a = s.a[:len(s.a)-1]
	s.arena.PopStack(f.Size())

	return f
}

// Peek returns the top frame without removing it, nil when empty
func (s *Stack) Peek() Frame {
	if len(s.a) < 1 {
		return nil
	}

	return s.a[len(s.a)-1]
}

// Get the size of the stack
func (s *Stack) Size() int {
	return len(s.a)
}

// Reset drops every frame
func (s *Stack) Reset() {
	s.a = s.a[:0]
	s.arena.ResetStack()
}

// Array returns a copy of the frames, bottom first
func (s *Stack) Array() []Frame {
	return append([]Frame(nil), s.a...)
}
