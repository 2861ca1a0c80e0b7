// Package core provides the execution engine of the tape machine interpreter.
// A Machine drives one tape at a time through the step loop of a validated
// Automaton until the halt state, an undefined transition, or the step
// budget ends the run.
// Dependencies: internal/primitives.
package core

import (
	"errors"
	"log/slog"

	"github.com/comalice/tapemachine/internal/primitives"
)

// Tracer observes every applied step. Implementations must not retain the
// engine's tape; StepEvent is a value and safe to keep.
type Tracer interface {
	Step(ev primitives.StepEvent)
}

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// Result is the outcome of a run that reached the halt state.
type Result struct {
	Tape  primitives.Tape  // final tape, including the halting write
	State primitives.State // always the automaton's halt state
	Steps int              // applied transitions, the halting one included
}

// Machine executes tapes against one shared, read-only Automaton.
// A Machine holds no per-run state, so one instance serves every tape.
type Machine struct {
	automaton *primitives.Automaton
	rules     ruleIndex
	budget    int
	logger    *slog.Logger
	tracer    Tracer
}

// NewMachine validates a and prepares the transition lookup table.
func NewMachine(a *primitives.Automaton, opts ...Option) (*Machine, error) {
	if a == nil {
		return nil, errors.New("nil automaton")
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		automaton: a,
		budget:    a.StepBudget,
		logger:    slog.Default(),
	}

	// Apply functional options
	for _, opt := range opts {
		opt(m)
	}

	if m.budget < 0 {
		return nil, errors.New("step budget must be non-negative")
	}
	m.rules = newRuleIndex(a.Transitions)
	return m, nil
}

// Automaton returns the automaton the machine executes.
func (m *Machine) Automaton() *primitives.Automaton {
	return m.automaton
}

// Budget returns the effective step budget.
func (m *Machine) Budget() int {
	return m.budget
}

// Run executes tape on a private copy; the caller's tape is never modified.
//
// Each step reads the head symbol, applies the first declared rule for
// (state, symbol) and writes. If the new state is the halt state the run
// ends there and the move is skipped. Otherwise the head moves and the
// step counts against the budget.
//
// On failure Run returns a *primitives.RunError wrapping
// primitives.ErrTransitionNotSpecified or primitives.ErrStepBudgetExceeded.
func (m *Machine) Run(tape primitives.Tape) (Result, error) {
	work := tape.Clone()
	state := m.automaton.Start
	steps := 0

	m.logger.Debug("run started", "state", state, "tape", work.Marked(), "budget", m.budget)

	for {
		if steps >= m.budget {
			err := &primitives.RunError{
				Kind:   primitives.ErrStepBudgetExceeded,
				State:  state,
				Symbol: work.Read(),
				Steps:  steps,
			}
			m.logger.Debug("run stopped", "error", err)
			return Result{}, err
		}

		sym := work.Read()
		rule, ok := m.rules.lookup(state, sym)
		if !ok {
			err := &primitives.RunError{
				Kind:   primitives.ErrTransitionNotSpecified,
				State:  state,
				Symbol: sym,
				Steps:  steps,
			}
			m.logger.Debug("run stopped", "error", err)
			return Result{}, err
		}

		work.Write(rule.Write)
		state = rule.Dest
		halted := m.automaton.IsHalt(state)

		if m.tracer != nil {
			m.tracer.Step(primitives.NewStepEvent(steps+1, rule, work.Position(), halted))
		}

		if halted {
			m.logger.Debug("run halted", "state", state, "steps", steps+1, "tape", work.String())
			return Result{Tape: work, State: state, Steps: steps + 1}, nil
		}

		work.Move(rule.Move)
		steps++
	}
}
