package primitives

import (
	"errors"
	"fmt"
)

// Parse and validation failures. A ParseError wraps exactly one of these.
var (
	ErrStartStateNotSpecified = errors.New("start state not specified")
	ErrEndStateNotSpecified   = errors.New("end state not specified")
	ErrNoSuchState            = errors.New("no such state")
	ErrWrongLiteral           = errors.New("wrong direction literal")
	ErrNoSuchLetter           = errors.New("no such letter in alphabet")
	ErrStartIndexNotSpecified = errors.New("start index not specified")
	ErrInvalidSyntax          = errors.New("invalid syntax")
)

// Run failures. A RunError wraps exactly one of these.
var (
	ErrTransitionNotSpecified = errors.New("transition not specified")
	ErrStepBudgetExceeded     = errors.New("step budget exceeded")
)

// NoLine marks a ParseError that is not tied to a single directive.
const NoLine = -1

// ParseError describes why a description could not be turned into an
// Automaton and tape list.
type ParseError struct {
	Kind   error  // one of the Err* parse sentinels
	Name   string // offending state name for ErrNoSuchState
	Line   int    // 0-based line index, NoLine when not applicable
	Detail string // optional context for ErrInvalidSyntax
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line >= 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line+1, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// NewParseError creates a ParseError of the given kind at line.
func NewParseError(kind error, line int) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}

// NoSuchState reports a reference to an undeclared state.
func NoSuchState(name State, line int) *ParseError {
	return &ParseError{Kind: ErrNoSuchState, Name: string(name), Line: line}
}

// InvalidSyntax reports a malformed directive payload.
func InvalidSyntax(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrInvalidSyntax, Line: line, Detail: fmt.Sprintf(format, args...)}
}

// RunError describes why a single tape did not reach the halt state.
type RunError struct {
	Kind   error  // ErrTransitionNotSpecified or ErrStepBudgetExceeded
	State  State  // control state when the run stopped
	Symbol Symbol // symbol under the head when the run stopped
	Steps  int    // completed steps
}

func (e *RunError) Error() string {
	if errors.Is(e.Kind, ErrStepBudgetExceeded) {
		return fmt.Sprintf("%s after %d steps (state %s)", e.Kind, e.Steps, e.State)
	}
	return fmt.Sprintf("%s for (%s, %q) after %d steps", e.Kind, e.State, rune(e.Symbol), e.Steps)
}

func (e *RunError) Unwrap() error {
	return e.Kind
}
