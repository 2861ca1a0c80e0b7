// Package primitives provides the foundational data structures for the
// tape machine interpreter.
//
// This package uses ONLY the Go standard library. It holds the data model
// shared by the parser and the execution engine:
// - State, Symbol, Direction and Alphabet
// - Transition and the immutable Automaton
// - Tape, a bi-infinite band materialised on demand
// - typed parse and run errors
//
// Core invariants:
// - An Automaton is never mutated once Validate succeeds
// - A Tape is owned by exactly one run at a time (Clone before sharing)
// - Band growth at either end is O(1) amortized and never renumbers cells
package primitives
