package vm

import (
	"github.com/lumascript/lumavm/errz"
)

// Stack is the LIFO operand stack used while evaluating expressions. It has
// no capacity limit and is not safe for concurrent use.
type Stack struct {
	items []any
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push places a value on top of the stack.
func (s *Stack) Push(value any) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (any, error) {
	sp := len(s.items) - 1
	if sp < 0 {
		return nil, errz.Errorf(errz.StackUnderflow, "pop on empty stack")
	}
	value := s.items[sp]
	s.items[sp] = nil
	s.items = s.items[:sp]
	return value, nil
}

// Top returns the top value without removing it.
func (s *Stack) Top() (any, error) {
	return s.Below(0)
}

// Below returns the value depth positions below the top without removing
// it. Below(0) is the top.
func (s *Stack) Below(depth int) (any, error) {
	if depth < 0 || depth >= len(s.items) {
		return nil, errz.Errorf(errz.StackUnderflow, "read at depth %d of stack with %d values", depth, len(s.items))
	}
	return s.items[len(s.items)-1-depth], nil
}

// ReplaceTop overwrites the top value.
func (s *Stack) ReplaceTop(value any) error {
	if len(s.items) == 0 {
		return errz.Errorf(errz.StackUnderflow, "replace on empty stack")
	}
	s.items[len(s.items)-1] = value
	return nil
}

// Clear removes every value.
func (s *Stack) Clear() {
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}
