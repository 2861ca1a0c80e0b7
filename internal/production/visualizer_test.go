package production

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/tapemachine/internal/primitives"
)

func TestDefaultVisualizer_ExportDOT(t *testing.T) {
	a := primitives.NewAutomatonBuilder("q0", "q1").
		States("q2").
		Symbols('0', '1', '_').
		Rule("q0", '0', "q2", '1', primitives.Right).
		Rule("q0", '1', "q2", '0', primitives.Left).
		Rule("q2", '_', "q1", '_', primitives.Left).
		Rule("q0", '0', "q1", '0', primitives.Right).
		MustBuild()

	dot := (&DefaultVisualizer{}).ExportDOT(a)

	assert.True(t, strings.HasPrefix(dot, "digraph TapeMachine {"))
	assert.Contains(t, dot, `"q0" [label="q0" style=bold];`)
	assert.Contains(t, dot, `"q1" [label="q1" shape=doublecircle];`)
	assert.Contains(t, dot, `"q2" [label="q2"];`)
	assert.Contains(t, dot, `"q0" -> "q2" [label="0/1,>\n1/0,<"];`)
	assert.Contains(t, dot, `"q2" -> "q1" [label="_/_,<"];`)
	assert.Contains(t, dot, `"q0" -> "q1" [label="0/0,>" style=dashed];`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestDefaultVisualizer_StartIsHalt(t *testing.T) {
	a := primitives.NewAutomatonBuilder("only", "only").MustBuild()
	dot := (&DefaultVisualizer{}).ExportDOT(a)
	assert.Contains(t, dot, `"only" [label="only" shape=doublecircle style=bold];`)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"a\"b\\c"`, quote(`a"b\c`))
}
