package core

import (
	"errors"
	"testing"

	"github.com/comalice/tapemachine/internal/primitives"
)

// binary returns the q0/q1 machine over {0,1,_} used throughout these tests.
func binary() *primitives.AutomatonBuilder {
	return primitives.NewAutomatonBuilder("q0", "q1").Symbols('0', '1', '_')
}

func mustMachine(t *testing.T, a *primitives.Automaton, opts ...Option) *Machine {
	t.Helper()
	m, err := NewMachine(a, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMachine_HaltsAfterOneStep(t *testing.T) {
	a := binary().Rule("q0", '0', "q1", '1', primitives.Right).MustBuild()
	m := mustMachine(t, a)

	res, err := m.Run(primitives.TapeFromString('_', "01", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tape.String(); got != "11" {
		t.Errorf("tape = %q, want 11", got)
	}
	if res.Steps != 1 {
		t.Errorf("steps = %d, want 1", res.Steps)
	}
	if res.State != "q1" {
		t.Errorf("state = %q, want q1", res.State)
	}
}

func TestMachine_HaltSkipsMove(t *testing.T) {
	// Moving right from the last cell would append a blank, moving left
	// from the first would prepend one. Neither happens on the halting step.
	for _, dir := range []primitives.Direction{primitives.Left, primitives.Right} {
		a := binary().Rule("q0", '0', "q1", '1', dir).MustBuild()
		m := mustMachine(t, a)

		res, err := m.Run(primitives.TapeFromString('_', "0", 0))
		if err != nil {
			t.Fatal(err)
		}
		if got := res.Tape.String(); got != "1" {
			t.Errorf("move %s: tape = %q, want 1", dir, got)
		}
		if res.Tape.Position() != 0 {
			t.Errorf("move %s: position = %d, want 0", dir, res.Tape.Position())
		}
	}
}

func TestMachine_LeftExtension(t *testing.T) {
	a := binary().
		States("q2").
		Rule("q0", '0', "q2", '1', primitives.Left).
		Rule("q2", '_', "q1", '_', primitives.Right).
		MustBuild()
	m := mustMachine(t, a)

	res, err := m.Run(primitives.TapeFromString('_', "0", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tape.String(); got != "_1" {
		t.Errorf("tape = %q, want _1", got)
	}
	if res.Tape.Position() != 0 {
		t.Errorf("position = %d, want 0", res.Tape.Position())
	}
}

func TestMachine_RightExtension(t *testing.T) {
	// Walk right over the input, then halt on the first blank.
	a := binary().
		Rule("q0", '0', "q0", '0', primitives.Right).
		Rule("q0", '1', "q0", '1', primitives.Right).
		Rule("q0", '_', "q1", '1', primitives.Right).
		MustBuild()
	m := mustMachine(t, a)

	res, err := m.Run(primitives.TapeFromString('_', "010", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tape.String(); got != "0101" {
		t.Errorf("tape = %q, want 0101", got)
	}
	if res.Steps != 4 {
		t.Errorf("steps = %d, want 4", res.Steps)
	}
}

func TestMachine_FirstDeclaredRuleWins(t *testing.T) {
	a := binary().
		States("q2").
		Rule("q0", '0', "q2", '1', primitives.Right).
		Rule("q0", '0', "q1", '0', primitives.Right).
		Rule("q2", '0', "q0", '1', primitives.Right).
		Rule("q2", '0', "q1", '_', primitives.Right).
		Rule("q0", '_', "q1", '_', primitives.Right).
		MustBuild()
	m := mustMachine(t, a)

	var seen []primitives.Transition
	m.tracer = tracerFunc(func(ev primitives.StepEvent) { seen = append(seen, ev.Rule) })

	res, err := m.Run(primitives.TapeFromString('_', "0000", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tape.String(); got != "1111_" {
		t.Errorf("tape = %q, want 1111_", got)
	}
	for _, r := range seen {
		if r.Dest == "q1" && r.Read == '0' {
			t.Errorf("shadowed rule %s fired", r)
		}
	}
}

func TestMachine_TransitionNotSpecified(t *testing.T) {
	a := binary().Rule("q0", '0', "q0", '1', primitives.Right).MustBuild()
	m := mustMachine(t, a)

	_, err := m.Run(primitives.TapeFromString('_', "001", 0))
	if !errors.Is(err, primitives.ErrTransitionNotSpecified) {
		t.Fatalf("err = %v, want ErrTransitionNotSpecified", err)
	}
	var re *primitives.RunError
	if !errors.As(err, &re) {
		t.Fatalf("err = %T, want *RunError", err)
	}
	if re.State != "q0" || re.Symbol != '1' || re.Steps != 2 {
		t.Errorf("RunError = %+v, want state q0 symbol '1' after 2 steps", re)
	}
}

func TestMachine_StepBudgetExceeded(t *testing.T) {
	a := binary().
		Rule("q0", '0', "q0", '0', primitives.Right).
		Budget(5).
		MustBuild()
	counter := &countingTracer{}
	m := mustMachine(t, a, WithTracer(counter))

	res, err := m.Run(primitives.TapeFromString('0', "0", 0))
	if !errors.Is(err, primitives.ErrStepBudgetExceeded) {
		t.Fatalf("err = %v, want ErrStepBudgetExceeded", err)
	}
	var re *primitives.RunError
	if !errors.As(err, &re) || re.Steps != 5 {
		t.Errorf("RunError = %v, want 5 steps", err)
	}
	if counter.n != 5 {
		t.Errorf("tracer saw %d steps, want 5", counter.n)
	}
	if res.Tape.Len() != 0 {
		t.Errorf("unfinished tape returned: %q", res.Tape.String())
	}
}

func TestMachine_HaltOnLastBudgetedStep(t *testing.T) {
	a := binary().
		Rule("q0", '0', "q0", '0', primitives.Right).
		Rule("q0", '_', "q1", '_', primitives.Right).
		Budget(3).
		MustBuild()
	m := mustMachine(t, a)

	// Three non-halting steps exhaust the budget before the blank is read.
	if _, err := m.Run(primitives.TapeFromString('_', "000", 0)); !errors.Is(err, primitives.ErrStepBudgetExceeded) {
		t.Errorf("3 moves + halt with budget 3: err = %v, want budget exceeded", err)
	}
	// Two non-halting steps then the halting one fit.
	res, err := m.Run(primitives.TapeFromString('_', "00", 0))
	if err != nil {
		t.Fatalf("2 moves + halt with budget 3: %v", err)
	}
	if res.Steps != 3 {
		t.Errorf("steps = %d, want 3", res.Steps)
	}
}

func TestMachine_ZeroBudget(t *testing.T) {
	a := binary().Rule("q0", '0', "q1", '1', primitives.Right).Budget(0).MustBuild()
	m := mustMachine(t, a)

	if _, err := m.Run(primitives.TapeFromString('_', "0", 0)); !errors.Is(err, primitives.ErrStepBudgetExceeded) {
		t.Errorf("err = %v, want ErrStepBudgetExceeded", err)
	}
}

func TestMachine_WithStepBudgetOverride(t *testing.T) {
	a := binary().Rule("q0", '0', "q0", '0', primitives.Right).Budget(100).MustBuild()
	m := mustMachine(t, a, WithStepBudget(2))
	if m.Budget() != 2 {
		t.Fatalf("Budget() = %d, want 2", m.Budget())
	}

	_, err := m.Run(primitives.TapeFromString('0', "0", 0))
	var re *primitives.RunError
	if !errors.As(err, &re) || re.Steps != 2 {
		t.Errorf("err = %v, want budget exceeded after 2 steps", err)
	}

	if _, err := NewMachine(a, WithStepBudget(-1)); err == nil {
		t.Error("negative budget accepted")
	}
}

func TestMachine_CallerTapeUntouched(t *testing.T) {
	a := binary().
		States("q2").
		Rule("q0", '0', "q2", '1', primitives.Left).
		Rule("q2", '_', "q1", '1', primitives.Left).
		MustBuild()
	m := mustMachine(t, a)

	tape := primitives.TapeFromString('_', "0", 0)
	for i := 0; i < 2; i++ {
		res, err := m.Run(tape)
		if err != nil {
			t.Fatal(err)
		}
		if got := res.Tape.String(); got != "11" {
			t.Errorf("run %d: tape = %q, want 11", i, got)
		}
	}
	if tape.String() != "0" || tape.Position() != 0 {
		t.Errorf("caller tape mutated: %q at %d", tape.String(), tape.Position())
	}
}

func TestNewMachine_Invalid(t *testing.T) {
	if _, err := NewMachine(nil); err == nil {
		t.Error("nil automaton accepted")
	}
	bad := &primitives.Automaton{
		Start:    "q0",
		Halt:     "q9",
		States:   primitives.NewStateSet("q0"),
		Alphabet: primitives.NewAlphabet(),
	}
	if _, err := NewMachine(bad); !errors.Is(err, primitives.ErrNoSuchState) {
		t.Errorf("err = %v, want ErrNoSuchState", err)
	}
}

type tracerFunc func(primitives.StepEvent)

func (f tracerFunc) Step(ev primitives.StepEvent) { f(ev) }

type countingTracer struct {
	n      int
	halted bool
}

func (c *countingTracer) Step(ev primitives.StepEvent) {
	c.n++
	c.halted = ev.Halted
}
