// Package core provides the execution engine of the tape machine interpreter.
// Options for configuring Machine instances.
package core

import "log/slog"

// WithStepBudget overrides the automaton's step budget.
func WithStepBudget(n int) Option {
	return func(m *Machine) {
		m.budget = n
	}
}

// WithLogger configures the Machine with a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTracer configures the Machine with a step Tracer.
func WithTracer(t Tracer) Option {
	return func(m *Machine) {
		m.tracer = t
	}
}
