package primitives

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"no line", NewParseError(ErrStartStateNotSpecified, NoLine), "start state not specified"},
		{"with line", NewParseError(ErrWrongLiteral, 4), "line 5: wrong direction literal"},
		{"state", NoSuchState("qX", 2), `line 3: no such state "qX"`},
		{"detail", InvalidSyntax(0, "bad %s", "budget"), "line 1: invalid syntax: bad budget"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunErrorUnwrap(t *testing.T) {
	err := error(&RunError{Kind: ErrTransitionNotSpecified, State: "q0", Symbol: '1', Steps: 3})
	if !errors.Is(err, ErrTransitionNotSpecified) {
		t.Error("RunError does not unwrap to its kind")
	}
	if errors.Is(err, ErrStepBudgetExceeded) {
		t.Error("RunError matched the wrong kind")
	}
	if !strings.Contains(err.Error(), "q0") {
		t.Errorf("message %q lacks state", err.Error())
	}

	budget := &RunError{Kind: ErrStepBudgetExceeded, State: "q0", Steps: 5}
	if !strings.Contains(budget.Error(), "after 5 steps") {
		t.Errorf("message %q lacks step count", budget.Error())
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("<"); !ok || d != Left {
		t.Errorf("ParseDirection(<) = %v, %v", d, ok)
	}
	if d, ok := ParseDirection(">"); !ok || d != Right {
		t.Errorf("ParseDirection(>) = %v, %v", d, ok)
	}
	for _, lit := range []string{"", "^", "<<", "L"} {
		if _, ok := ParseDirection(lit); ok {
			t.Errorf("ParseDirection(%q) accepted", lit)
		}
	}
}
