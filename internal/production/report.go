package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/tapemachine/internal/core"
	"github.com/comalice/tapemachine/internal/primitives"
)

// Status classifies how a run ended.
type Status string

const (
	StatusHalted         Status = "halted"
	StatusNoTransition   Status = "no_transition"
	StatusBudgetExceeded Status = "budget_exceeded"
	StatusFailed         Status = "failed"
)

// RunReport is the serializable result of one tape.
type RunReport struct {
	ID     string `json:"id" yaml:"id"`
	Tape   int    `json:"tape" yaml:"tape"`   // 1-based
	Input  string `json:"input" yaml:"input"` // initial band with head marker
	Status Status `json:"status" yaml:"status"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Steps  int    `json:"steps" yaml:"steps"`
	State  string `json:"final_state,omitempty" yaml:"final_state,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the serializable result of a whole description.
type Report struct {
	Source      string      `json:"source,omitempty" yaml:"source,omitempty"`
	Fingerprint string      `json:"fingerprint" yaml:"fingerprint"`
	StepBudget  int         `json:"step_budget" yaml:"step_budget"`
	Runs        []RunReport `json:"runs" yaml:"runs"`
}

// Failed reports whether any run did not halt.
func (r Report) Failed() bool {
	for _, run := range r.Runs {
		if run.Status != StatusHalted {
			return true
		}
	}
	return false
}

// NewReport assembles a Report from batch outcomes. tapes are the initial
// tapes the outcomes were produced from.
func NewReport(source string, m *core.Machine, tapes []primitives.Tape, outcomes []core.Outcome) Report {
	r := Report{
		Source:      source,
		Fingerprint: primitives.Fingerprint(m.Automaton()),
		StepBudget:  m.Budget(),
		Runs:        make([]RunReport, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		run := RunReport{
			ID:     uuid.NewString(),
			Tape:   o.Index + 1,
			Status: statusOf(o.Err),
		}
		if o.Index < len(tapes) {
			run.Input = tapes[o.Index].Marked()
		}
		if o.Err == nil {
			run.Output = o.Result.Tape.String()
			run.Steps = o.Result.Steps
			run.State = string(o.Result.State)
		} else {
			run.Error = o.Err.Error()
			var re *primitives.RunError
			if errors.As(o.Err, &re) {
				run.Steps = re.Steps
				run.State = string(re.State)
			}
		}
		r.Runs = append(r.Runs, run)
	}
	return r
}

func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusHalted
	case errors.Is(err, primitives.ErrTransitionNotSpecified):
		return StatusNoTransition
	case errors.Is(err, primitives.ErrStepBudgetExceeded):
		return StatusBudgetExceeded
	default:
		return StatusFailed
	}
}

// Writer renders a Report.
type Writer interface {
	Write(w io.Writer, r Report) error
}

// NewWriter returns the Writer for format: text, json or yaml.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextWriter{}, nil
	case "json":
		return JSONWriter{}, nil
	case "yaml", "yml":
		return YAMLWriter{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// TextWriter prints one "Tape N: <band>" line per run.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, r Report) error {
	for _, run := range r.Runs {
		var err error
		if run.Status == StatusHalted {
			_, err = fmt.Fprintf(w, "Tape %d: %s\n", run.Tape, run.Output)
		} else {
			_, err = fmt.Fprintf(w, "Tape %d: error: %s\n", run.Tape, run.Error)
		}
		if err != nil {
			return fmt.Errorf("write tape %d: %w", run.Tape, err)
		}
	}
	return nil
}

// JSONWriter renders the report as indented JSON.
type JSONWriter struct{}

func (JSONWriter) Write(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// YAMLWriter renders the report as YAML.
type YAMLWriter struct{}

func (YAMLWriter) Write(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}
