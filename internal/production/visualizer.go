// Package production provides production integrations: reports, tracing, visualization.
package production

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/comalice/tapemachine/internal/primitives"
)

// DefaultVisualizer renders automata as Graphviz DOT.
type DefaultVisualizer struct{}

// Edge groups the rules between one pair of states.
type Edge struct {
	From   primitives.State
	To     primitives.State
	Labels []string // "read/write,move", declaration order
}

// ExportDOT generates Graphviz DOT source for the automaton. The start state
// is drawn bold and the halt state as a double circle. Shadowed rules (a
// later rule for an already covered (state, symbol) pair) are drawn dashed.
func (v *DefaultVisualizer) ExportDOT(a *primitives.Automaton) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph TapeMachine {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
`)

	for _, st := range a.States.Sorted() {
		attrs := ""
		switch {
		case st == a.Start && st == a.Halt:
			attrs = " shape=doublecircle style=bold"
		case st == a.Start:
			attrs = " style=bold"
		case st == a.Halt:
			attrs = " shape=doublecircle"
		}
		buf.WriteString(fmt.Sprintf("  %s [label=%s%s];\n", quote(string(st)), quote(string(st)), attrs))
	}

	live, shadowed := collectEdges(a)
	for _, e := range live {
		writeEdge(&buf, e, "")
	}
	for _, e := range shadowed {
		writeEdge(&buf, e, " style=dashed")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEdge(buf *bytes.Buffer, e Edge, attrs string) {
	buf.WriteString(fmt.Sprintf("  %s -> %s [label=%s%s];\n",
		quote(string(e.From)), quote(string(e.To)), quote(strings.Join(e.Labels, "\n")), attrs))
}

// collectEdges groups rules by (From, To) in order of first appearance and
// splits off rules that can never fire.
func collectEdges(a *primitives.Automaton) (live, shadowed []Edge) {
	type pair struct{ from, to primitives.State }
	type key struct {
		st  primitives.State
		sym primitives.Symbol
	}
	covered := make(map[key]bool)
	liveIdx := make(map[pair]int)
	shadowIdx := make(map[pair]int)

	for _, t := range a.Transitions {
		label := fmt.Sprintf("%s/%s,%s", t.Read, t.Write, t.Move)
		p := pair{t.Source, t.Dest}
		k := key{t.Source, t.Read}

		edges, idx := &live, liveIdx
		if covered[k] {
			edges, idx = &shadowed, shadowIdx
		}
		covered[k] = true

		if i, ok := idx[p]; ok {
			(*edges)[i].Labels = append((*edges)[i].Labels, label)
			continue
		}
		idx[p] = len(*edges)
		*edges = append(*edges, Edge{From: t.Source, To: t.Dest, Labels: []string{label}})
	}
	return live, shadowed
}

// quote renders s as a DOT string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
