// Package primitives defines the foundational data structures for the interpreter.
//
// State, Symbol and Direction are the atoms of an automaton. States are
// identified by their declared name only.
package primitives

import (
	"sort"
)

// State is a control state, identified by its declared name.
type State string

// Symbol is a single tape cell value.
type Symbol rune

func (s Symbol) String() string {
	return string(rune(s))
}

// Direction is the head movement applied after a write.
type Direction int

const (
	Left Direction = iota
	Right
)

// ParseDirection maps the literals "<" and ">" to a Direction.
func ParseDirection(lit string) (Direction, bool) {
	switch lit {
	case "<":
		return Left, true
	case ">":
		return Right, true
	}
	return 0, false
}

func (d Direction) String() string {
	if d == Left {
		return "<"
	}
	return ">"
}

// StateSet is the set of declared states.
type StateSet map[State]struct{}

// NewStateSet creates a StateSet holding the given states.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s.Add(st)
	}
	return s
}

// Add inserts a state. Adding an existing state is a no-op.
func (s StateSet) Add(st State) {
	s[st] = struct{}{}
}

// Has reports whether st was declared.
func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

// Sorted returns the states in lexical order.
func (s StateSet) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet is the set of symbols transitions may read or write.
type Alphabet map[Symbol]struct{}

// NewAlphabet creates an Alphabet holding the given symbols.
func NewAlphabet(symbols ...Symbol) Alphabet {
	a := make(Alphabet, len(symbols))
	for _, sym := range symbols {
		a.Add(sym)
	}
	return a
}

// Add inserts a symbol. Adding an existing symbol is a no-op.
func (a Alphabet) Add(sym Symbol) {
	a[sym] = struct{}{}
}

// Has reports whether sym belongs to the alphabet.
func (a Alphabet) Has(sym Symbol) bool {
	_, ok := a[sym]
	return ok
}

// Sorted returns the symbols in code point order.
func (a Alphabet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(a))
	for sym := range a {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
