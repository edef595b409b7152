// Package errz defines the error kinds raised by the loader, the operand
// stack and the discovery engine.
package errz

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// StackUnderflow indicates a read or pop on an evaluation stack that is
	// too shallow.
	StackUnderflow ErrorKind = iota + 1
	// MalformedEquality indicates an instruction was compared with a value
	// that is not an instruction.
	MalformedEquality
	// UnknownOperandDomain indicates a discovery query ran with the operand
	// register outside LIGHT, GROUP and LOCATION.
	UnknownOperandDomain
	// Linkage indicates an instruction stream that can't be linked.
	Linkage
	// Name indicates a variable that isn't defined in the current frame.
	Name
	// Registry indicates a light registry that couldn't be read.
	Registry
	// InvalidInstruction indicates an instruction handed to a component
	// that doesn't execute its opcode.
	InvalidInstruction
	// InvalidPattern indicates a time pattern that doesn't parse.
	InvalidPattern
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case StackUnderflow:
		return "stack underflow"
	case MalformedEquality:
		return "malformed equality"
	case UnknownOperandDomain:
		return "unknown operand domain"
	case Linkage:
		return "linkage error"
	case Name:
		return "name error"
	case Registry:
		return "registry error"
	case InvalidInstruction:
		return "invalid instruction"
	case InvalidPattern:
		return "invalid pattern"
	default:
		return "error"
	}
}

// Error is an error tagged with its kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Sentinels for use with errors.Is. Any *Error of the same kind matches.
var (
	ErrStackUnderflow       = &Error{Kind: StackUnderflow}
	ErrMalformedEquality    = &Error{Kind: MalformedEquality}
	ErrUnknownOperandDomain = &Error{Kind: UnknownOperandDomain}
	ErrLinkage              = &Error{Kind: Linkage}
	ErrName                 = &Error{Kind: Name}
	ErrRegistry             = &Error{Kind: Registry}
	ErrInvalidInstruction   = &Error{Kind: InvalidInstruction}
	ErrInvalidPattern       = &Error{Kind: InvalidPattern}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsFatal returns whether the error should terminate the current
// interpreter step. Only name errors are recoverable.
func (e *Error) IsFatal() bool {
	return e.Kind != Name
}

// Errorf creates a new error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new error of the given kind caused by err.
func Wrap(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: err}
}

// KindOf returns the kind of the first *Error in err's chain, or zero if
// there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
