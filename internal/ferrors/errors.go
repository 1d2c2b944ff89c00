// Package ferrors defines the interpreter's own error type, distinct
// from the github.com/pkg/errors wrapping used at I/O boundaries
// elsewhere in this module. Adapted from the teacher's
// internal/errors/errors.go: same Kind/Message/location shape, with the
// call-stack field dropped (a Befunge-98 program has no call frames) and
// SourceLocation narrowed to a single grid position plus the offending
// instruction byte.
package ferrors

import (
	"fmt"
	"strings"
)

// Kind classifies a FungeError.
type Kind string

const (
	SyntaxError        Kind = "SyntaxError"
	RuntimeError       Kind = "RuntimeError"
	DivisionByZero     Kind = "DivisionByZero"
	StackUnderflow     Kind = "StackUnderflow"
	UnknownFingerprint Kind = "UnknownFingerprint"
	IOError            Kind = "IOError"
)

// SourceLocation pinpoints where in Funge-Space an error occurred.
type SourceLocation struct {
	X, Y        int64
	Instruction byte
}

func (l SourceLocation) String() string {
	if l.Instruction == 0 {
		return fmt.Sprintf("(%d,%d)", l.X, l.Y)
	}
	return fmt.Sprintf("(%d,%d) %q", l.X, l.Y, string(l.Instruction))
}

// FungeError is this interpreter's error type, carrying enough context
// to print a useful diagnostic without unwinding any call stack — there
// isn't one.
type FungeError struct {
	Kind     Kind
	Message  string
	Location SourceLocation
}

func (e *FungeError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Location.X != 0 || e.Location.Y != 0 || e.Location.Instruction != 0 {
		sb.WriteString(" at ")
		sb.WriteString(e.Location.String())
	}
	return sb.String()
}

// New constructs a FungeError with no location attached.
func New(kind Kind, message string) *FungeError {
	return &FungeError{Kind: kind, Message: message}
}

// At attaches a source location to a FungeError, returning e for
// chaining at the call site (e.g. `return nil, ferrors.New(...).At(x, y, instr)`).
func (e *FungeError) At(x, y int64, instr byte) *FungeError {
	e.Location = SourceLocation{X: x, Y: y, Instruction: instr}
	return e
}

// NewRuntimeError is a convenience constructor mirroring the teacher's
// NewRuntimeError/NewSyntaxError pair.
func NewRuntimeError(message string, x, y int64, instr byte) *FungeError {
	return New(RuntimeError, message).At(x, y, instr)
}

// NewSyntaxError is used for malformed source input discovered before
// execution begins (unbalanced string mode at EOF, for example).
func NewSyntaxError(message string) *FungeError {
	return New(SyntaxError, message)
}
