// Package primitives provides fingerprinting for Automaton.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// canonicalAutomaton is the order-independent form hashed by Fingerprint.
type canonicalAutomaton struct {
	Start       State    `json:"start"`
	Halt        State    `json:"halt"`
	States      []State  `json:"states"`
	Alphabet    string   `json:"alphabet"`
	Transitions []string `json:"transitions"`
	StepBudget  int      `json:"step_budget"`
}

// Fingerprint computes a deterministic identifier for an automaton.
// Declaration order of states and symbols does not matter; the order of
// transitions does, since it decides which rule wins.
func Fingerprint(a *Automaton) string {
	c := canonicalAutomaton{
		Start:      a.Start,
		Halt:       a.Halt,
		States:     a.States.Sorted(),
		StepBudget: a.StepBudget,
	}
	for _, sym := range a.Alphabet.Sorted() {
		c.Alphabet += sym.String()
	}
	for _, t := range a.Transitions {
		c.Transitions = append(c.Transitions, t.String())
	}

	data, err := json.Marshal(c)
	if err != nil {
		// Fallback (should not happen for plain strings)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
