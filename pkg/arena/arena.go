// Package arena accounts for the fixed amount of memory shared by stored
// program text and the control-flow stack.
//
// Program text grows from the bottom of the region and the stack grows down
// from the top. Both halves are tracked as byte counts; every reservation is
// checked against the opposite half so the two never overlap.
package arena

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfMemory   = errors.New("out of memory")
	ErrStackTooSmall = errors.New("stack too small")
)

type Arena struct {
	size      int // total bytes
	stackSize int // bytes reserved for the stack at the top of the region
	program   int // bytes used by program text
	stack     int // bytes used by stack frames
}

// Usage is a point-in-time view of the arena
type Usage struct {
	Size      int
	StackSize int
	Program   int
	Stack     int
}

// New creates an arena of size bytes, the top stackSize of which hold the stack
func New(size, stackSize int) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memory size must be positive, got %d", size)
	}
	if stackSize <= 0 || stackSize >= size {
		return nil, fmt.Errorf("stack size must be between 1 and %d, got %d", size-1, stackSize)
	}

	return &Arena{size: size, stackSize: stackSize}, nil
}

// ProgramCapacity returns the number of bytes available to program text
func (a *Arena) ProgramCapacity() int {
	return a.size - a.stackSize
}

// ReserveProgram grows (or, for negative n, shrinks) the program region
func (a *Arena) ReserveProgram(n int) error {
	next := a.program + n
	if next < 0 {
		next = 0
	}
	if next > a.ProgramCapacity() || next+a.stack > a.size {
		return ErrOutOfMemory
	}

	a.program = next
	return nil
}

// ReleaseProgram returns n bytes of program text to the arena
func (a *Arena) ReleaseProgram(n int) {
	a.program -= n
	if a.program < 0 {
		a.program = 0
	}
}

// ResetProgram releases all program text
func (a *Arena) ResetProgram() {
	a.program = 0
}

// PushStack reserves n bytes on the stack. The stack top after the push must
// stay above the program region's current extent.
func (a *Arena) PushStack(n int) error {
	if a.stack+n > a.stackSize {
		return ErrStackTooSmall
	}
	if a.size-(a.stack+n) < a.program {
		return ErrStackTooSmall
	}

	a.stack += n
	return nil
}

// PopStack releases n bytes from the stack
func (a *Arena) PopStack(n int) {
	a.stack -= n
	if a.stack < 0 {
		a.stack = 0
	}
}

// ResetStack empties the stack
func (a *Arena) ResetStack() {
	a.stack = 0
}

// Usage reports the current usage
func (a *Arena) Usage() Usage {
	return Usage{
		Size:      a.size,
		StackSize: a.stackSize,
		Program:   a.program,
		Stack:     a.stack,
	}
}
