package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/comalice/tapemachine"
	"github.com/comalice/tapemachine/internal/config"
	"github.com/comalice/tapemachine/internal/production"
)

func newRunCmd(o *rootOptions) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "run <description>",
		Short: "Run every tape of a description",
		Long: `Parse the description, then run each of its tapes independently in
declaration order. Halted tapes print their final band; failed tapes print
the error. The command fails if parsing fails or any tape does not halt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runDescription(cmd, args[0], outFile)
		},
	}

	f := cmd.Flags()
	f.String("format", "text", "Output format: text, json, yaml")
	f.Int("budget", config.NoBudgetOverride, "Override the step budget of the description")
	f.Bool("stop-on-error", false, "Stop after the first tape that does not halt")
	f.Bool("trace", false, "Log every applied transition")
	f.StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	bindFlags(o.v, f, "format", "budget", "stop-on-error", "trace")

	return cmd
}

func (o *rootOptions) runDescription(cmd *cobra.Command, path, outFile string) error {
	prog, err := o.loadProgram(path)
	if err != nil {
		return err
	}

	opts := []tapemachine.Option{tapemachine.WithLogger(o.logger)}
	if o.cfg.HasBudget() {
		opts = append(opts, tapemachine.WithStepBudget(o.cfg.Budget))
	}
	if o.cfg.Trace {
		opts = append(opts, tapemachine.WithTracer(production.NewLogTracer(o.logger, slog.LevelInfo)))
	}
	policy := tapemachine.ContinueOnError
	if o.cfg.StopOnError {
		policy = tapemachine.StopOnError
	}

	m, err := prog.Machine(opts...)
	if err != nil {
		return err
	}
	outcomes := m.RunAll(prog.Tapes, policy)
	report := production.NewReport(path, m, prog.Tapes, outcomes)

	writer, err := production.NewWriter(o.cfg.Format)
	if err != nil {
		return err
	}
	out, closeOut, err := openOutput(cmd.OutOrStdout(), outFile)
	if err != nil {
		return err
	}
	if err := writer.Write(out, report); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if report.Failed() {
		failed := 0
		for _, run := range report.Runs {
			if run.Status != production.StatusHalted {
				failed++
			}
		}
		return fmt.Errorf("%d of %d tapes did not halt", failed, len(report.Runs))
	}
	return nil
}
