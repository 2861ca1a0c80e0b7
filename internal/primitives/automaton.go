// Package primitives defines the foundational data structures for the interpreter.
//
// Automaton is the complete, immutable description of a single-tape machine:
// start and halt state, declared states and alphabet, transition rules in
// declaration order and the step budget.
// Validation ensures start/halt presence and that every rule references
// declared states and symbols.
package primitives

import (
	"fmt"
)

// DefaultStepBudget applies when a description does not set one.
const DefaultStepBudget = 100000

// Automaton is shared read-only by every run; do not mutate it after
// Validate has succeeded.
type Automaton struct {
	Start       State        `json:"start" yaml:"start"`
	Halt        State        `json:"halt" yaml:"halt"`
	States      StateSet     `json:"-" yaml:"-"`
	Alphabet    Alphabet     `json:"-" yaml:"-"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
	StepBudget  int          `json:"step_budget" yaml:"step_budget"`
}

// Validate checks the automaton invariants:
// - Start and Halt are set and declared
// - every rule's Source and Dest are declared
// - every rule's Read and Write belong to the alphabet
// - StepBudget is non-negative
func (a *Automaton) Validate() error {
	if a.Start == "" {
		return NewParseError(ErrStartStateNotSpecified, NoLine)
	}
	if !a.States.Has(a.Start) {
		return NoSuchState(a.Start, NoLine)
	}
	if a.Halt == "" {
		return NewParseError(ErrEndStateNotSpecified, NoLine)
	}
	if !a.States.Has(a.Halt) {
		return NoSuchState(a.Halt, NoLine)
	}

	for i, t := range a.Transitions {
		if !a.States.Has(t.Source) {
			return NoSuchState(t.Source, NoLine)
		}
		if !a.States.Has(t.Dest) {
			return NoSuchState(t.Dest, NoLine)
		}
		if !a.Alphabet.Has(t.Read) || !a.Alphabet.Has(t.Write) {
			return &ParseError{
				Kind:   ErrNoSuchLetter,
				Line:   NoLine,
				Detail: fmt.Sprintf("transition %d (%s)", i, t),
			}
		}
		if t.Move != Left && t.Move != Right {
			return &ParseError{
				Kind:   ErrWrongLiteral,
				Line:   NoLine,
				Detail: fmt.Sprintf("transition %d", i),
			}
		}
	}

	if a.StepBudget < 0 {
		return InvalidSyntax(NoLine, "step budget must be non-negative, got %d", a.StepBudget)
	}
	return nil
}

// IsHalt reports whether st is the halting state.
func (a *Automaton) IsHalt(st State) bool {
	return st == a.Halt
}

// RulesFrom returns the rules whose Source is st, in declaration order.
func (a *Automaton) RulesFrom(st State) []Transition {
	var out []Transition
	for _, t := range a.Transitions {
		if t.Source == st {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the first declared rule for (st, sym).
func (a *Automaton) Lookup(st State, sym Symbol) (Transition, bool) {
	for _, t := range a.Transitions {
		if t.Matches(st, sym) {
			return t, true
		}
	}
	return Transition{}, false
}
