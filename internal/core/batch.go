package core

import (
	"github.com/comalice/tapemachine/internal/primitives"
)

// BatchPolicy decides what RunAll does after a tape fails.
type BatchPolicy int

const (
	// ContinueOnError runs every tape regardless of earlier failures.
	ContinueOnError BatchPolicy = iota
	// StopOnError ends the batch after the first failed tape.
	StopOnError
)

// Outcome is the result of one tape within a batch.
type Outcome struct {
	Index  int // 0-based position of the tape in declaration order
	Result Result
	Err    error
}

// Halted reports whether the tape reached the halt state.
func (o Outcome) Halted() bool {
	return o.Err == nil
}

// RunAll runs tapes independently and in order. Runs share nothing but the
// read-only automaton, so one failure never changes another tape's result.
// With StopOnError the returned slice ends at the first failure.
func (m *Machine) RunAll(tapes []primitives.Tape, policy BatchPolicy) []Outcome {
	out := make([]Outcome, 0, len(tapes))
	for i, tape := range tapes {
		res, err := m.Run(tape)
		out = append(out, Outcome{Index: i, Result: res, Err: err})
		if err != nil {
			m.logger.Debug("tape failed", "tape", i+1, "error", err)
			if policy == StopOnError {
				break
			}
		}
	}
	return out
}
