// Package primitives includes builder helpers for Automaton.
package primitives

// AutomatonBuilder builds an Automaton fluently.
type AutomatonBuilder struct {
	a *Automaton
}

// NewAutomatonBuilder creates a builder with the given start and halt states.
// Both are declared automatically.
func NewAutomatonBuilder(start, halt State) *AutomatonBuilder {
	return &AutomatonBuilder{
		a: &Automaton{
			Start:      start,
			Halt:       halt,
			States:     NewStateSet(start, halt),
			Alphabet:   NewAlphabet(),
			StepBudget: DefaultStepBudget,
		},
	}
}

// States declares additional states.
func (b *AutomatonBuilder) States(states ...State) *AutomatonBuilder {
	for _, st := range states {
		b.a.States.Add(st)
	}
	return b
}

// Symbols declares alphabet symbols.
func (b *AutomatonBuilder) Symbols(symbols ...Symbol) *AutomatonBuilder {
	for _, sym := range symbols {
		b.a.Alphabet.Add(sym)
	}
	return b
}

// Rule appends a transition after all previously added ones.
func (b *AutomatonBuilder) Rule(source State, read Symbol, dest State, write Symbol, move Direction) *AutomatonBuilder {
	b.a.Transitions = append(b.a.Transitions, NewTransition(source, read, dest, write, move))
	return b
}

// Budget sets the step budget.
func (b *AutomatonBuilder) Budget(n int) *AutomatonBuilder {
	b.a.StepBudget = n
	return b
}

// Build validates and returns the automaton.
func (b *AutomatonBuilder) Build() (*Automaton, error) {
	if err := b.a.Validate(); err != nil {
		return nil, err
	}
	return b.a, nil
}

// MustBuild is Build for static definitions; it panics on invalid input.
func (b *AutomatonBuilder) MustBuild() *Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
