// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/comalice/tapemachine/internal/primitives"
)

// Incrementer is the binary increment machine: walk right to the end of the
// number, then carry leftwards.
const Incrementer = `[s]:right,carry,done
[e]:right
[x]:done
[a]:0,1,_
[t|right]:0->(right,0,>)|1->(right,1,>)|_->(carry,_,<)
[t|carry]:1->(carry,0,<)|0->(done,1,<)|_->(done,1,<)
`

// GenWalker creates a machine with n states that walks right over zeros,
// cycling through its states, and halts on the first blank.
func GenWalker(n int) *primitives.Automaton {
	if n < 1 {
		n = 1
	}
	b := primitives.NewAutomatonBuilder("s0", "halt").Symbols('0', '_')
	for i := 0; i < n; i++ {
		src := primitives.State(fmt.Sprintf("s%d", i))
		next := primitives.State(fmt.Sprintf("s%d", (i+1)%n))
		b.States(src).
			Rule(src, '0', next, '0', primitives.Right).
			Rule(src, '_', "halt", '_', primitives.Right)
	}
	return b.MustBuild()
}

// GenShadowed creates a single-state loop preceded by n-1 shadowed
// duplicates of its rule.
func GenShadowed(n int) *primitives.Automaton {
	b := primitives.NewAutomatonBuilder("s0", "halt").Symbols('0', '_')
	for i := 0; i < n; i++ {
		b.Rule("s0", '0', "s0", '0', primitives.Right)
	}
	return b.Rule("s0", '_', "halt", '_', primitives.Right).MustBuild()
}

// GenDescription renders an incrementer description with tapes binary
// numbers of the given width.
func GenDescription(tapes, width int) string {
	var sb strings.Builder
	sb.WriteString(Incrementer)
	for i := 0; i < tapes; i++ {
		digits := []byte(strings.Repeat("1", width))
		digits[i%width] = '0'
		fmt.Fprintf(&sb, "[b|_]:[%c]%s\n", digits[0], digits[1:])
	}
	return sb.String()
}

// Zeros returns a tape of n zeros with the head on the first cell.
func Zeros(n int) primitives.Tape {
	return primitives.TapeFromString('_', strings.Repeat("0", n), 0)
}
