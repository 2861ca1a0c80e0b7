package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/tapemachine/internal/production"
)

func newDotCmd(o *rootOptions) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "dot <description>",
		Short: "Render the automaton of a description as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := o.loadProgram(args[0])
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(cmd.OutOrStdout(), outFile)
			if err != nil {
				return err
			}
			v := &production.DefaultVisualizer{}
			if _, err := fmt.Fprint(out, v.ExportDOT(prog.Automaton)); err != nil {
				_ = closeOut()
				return fmt.Errorf("write dot: %w", err)
			}
			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
