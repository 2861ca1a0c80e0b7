// Package primitives defines the foundational data structures for the interpreter.
// Transition defines one rule of the finite control.
// When several rules share a (Source, Read) pair the first declared one wins,
// so the order of Automaton.Transitions is significant.
package primitives

import "fmt"

// Transition maps (Source, Read) to (Dest, Write, Move).
type Transition struct {
	Source State     `json:"source" yaml:"source"`
	Read   Symbol    `json:"read" yaml:"read"`
	Dest   State     `json:"dest" yaml:"dest"`
	Write  Symbol    `json:"write" yaml:"write"`
	Move   Direction `json:"move" yaml:"move"`
}

// NewTransition creates a Transition.
func NewTransition(source State, read Symbol, dest State, write Symbol, move Direction) Transition {
	return Transition{
		Source: source,
		Read:   read,
		Dest:   dest,
		Write:  write,
		Move:   move,
	}
}

// Matches reports whether the rule applies in state st reading sym.
func (t Transition) Matches(st State, sym Symbol) bool {
	return t.Source == st && t.Read == sym
}

// String renders the rule in description-language form: q0:0->(q1,1,>).
func (t Transition) String() string {
	return fmt.Sprintf("%s:%s->(%s,%s,%s)", t.Source, t.Read, t.Dest, t.Write, t.Move)
}
