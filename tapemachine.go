// Package tapemachine interprets single-tape Turing machines written in a
// small tagged description language.
//
// A description declares states, a start and a halt state, an alphabet,
// transition rules and any number of initial tapes. Parse turns the text
// into a Program; Program.RunAll executes every tape independently.
//
//	prog, err := tapemachine.Parse(src)
//	if err != nil {
//		return err
//	}
//	outcomes, err := prog.RunAll(tapemachine.ContinueOnError)
package tapemachine

import (
	"github.com/comalice/tapemachine/internal/core"
	"github.com/comalice/tapemachine/internal/parser"
	"github.com/comalice/tapemachine/internal/primitives"
)

type (
	Automaton        = primitives.Automaton
	AutomatonBuilder = primitives.AutomatonBuilder
	Tape             = primitives.Tape
	State            = primitives.State
	Symbol           = primitives.Symbol
	Direction        = primitives.Direction
	Transition       = primitives.Transition
	StepEvent        = primitives.StepEvent
	ParseError       = primitives.ParseError
	RunError         = primitives.RunError

	Machine     = core.Machine
	Result      = core.Result
	Outcome     = core.Outcome
	Option      = core.Option
	Tracer      = core.Tracer
	BatchPolicy = core.BatchPolicy
)

const (
	Left  = primitives.Left
	Right = primitives.Right

	ContinueOnError = core.ContinueOnError
	StopOnError     = core.StopOnError

	DefaultStepBudget = primitives.DefaultStepBudget
)

var (
	ErrStartStateNotSpecified = primitives.ErrStartStateNotSpecified
	ErrEndStateNotSpecified   = primitives.ErrEndStateNotSpecified
	ErrNoSuchState            = primitives.ErrNoSuchState
	ErrWrongLiteral           = primitives.ErrWrongLiteral
	ErrNoSuchLetter           = primitives.ErrNoSuchLetter
	ErrStartIndexNotSpecified = primitives.ErrStartIndexNotSpecified
	ErrInvalidSyntax          = primitives.ErrInvalidSyntax
	ErrTransitionNotSpecified = primitives.ErrTransitionNotSpecified
	ErrStepBudgetExceeded     = primitives.ErrStepBudgetExceeded
)

var (
	WithStepBudget = core.WithStepBudget
	WithLogger     = core.WithLogger
	WithTracer     = core.WithTracer

	NewAutomatonBuilder = primitives.NewAutomatonBuilder
	NewTape             = primitives.NewTape
	TapeFromString      = primitives.TapeFromString
	Fingerprint         = primitives.Fingerprint
)

// Program is a parsed description: the automaton and its tapes in
// declaration order.
type Program struct {
	Automaton *Automaton
	Tapes     []Tape
}

// Parse reads a complete description. On failure it returns a *ParseError
// matching one of the Err* parse sentinels via errors.Is.
func Parse(src string) (*Program, error) {
	p, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Program{Automaton: p.Automaton, Tapes: p.Tapes}, nil
}

// Run executes a single tape on a.
func Run(a *Automaton, tape Tape, opts ...Option) (Result, error) {
	m, err := core.NewMachine(a, opts...)
	if err != nil {
		return Result{}, err
	}
	return m.Run(tape)
}

// Machine returns an engine for p's automaton.
func (p *Program) Machine(opts ...Option) (*Machine, error) {
	return core.NewMachine(p.Automaton, opts...)
}

// RunAll executes every tape of p. The error is non-nil only when the
// options are invalid; per-tape failures are reported in each Outcome.
func (p *Program) RunAll(policy BatchPolicy, opts ...Option) ([]Outcome, error) {
	m, err := p.Machine(opts...)
	if err != nil {
		return nil, err
	}
	return m.RunAll(p.Tapes, policy), nil
}
