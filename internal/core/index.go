package core

import (
	"github.com/comalice/tapemachine/internal/primitives"
)

type ruleKey struct {
	state  primitives.State
	symbol primitives.Symbol
}

// ruleIndex maps (state, symbol) to the first declared matching rule.
type ruleIndex map[ruleKey]primitives.Transition

func newRuleIndex(transitions []primitives.Transition) ruleIndex {
	idx := make(ruleIndex, len(transitions))
	for _, t := range transitions {
		k := ruleKey{state: t.Source, symbol: t.Read}
		if _, seen := idx[k]; seen {
			// Later duplicates never fire.
			continue
		}
		idx[k] = t
	}
	return idx
}

func (idx ruleIndex) lookup(st primitives.State, sym primitives.Symbol) (primitives.Transition, bool) {
	t, ok := idx[ruleKey{state: st, symbol: sym}]
	return t, ok
}
