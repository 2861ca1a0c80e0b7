package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/tapemachine"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <description>",
		Short: "Parse a description and print a summary without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := o.loadProgram(args[0])
			if err != nil {
				return err
			}

			a := prog.Automaton
			symbols := make([]string, 0, len(a.Alphabet))
			for _, sym := range a.Alphabet.Sorted() {
				symbols = append(symbols, sym.String())
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "start:       %s\n", a.Start)
			fmt.Fprintf(w, "halt:        %s\n", a.Halt)
			fmt.Fprintf(w, "states:      %d\n", len(a.States))
			fmt.Fprintf(w, "alphabet:    %s\n", strings.Join(symbols, " "))
			fmt.Fprintf(w, "transitions: %d\n", len(a.Transitions))
			fmt.Fprintf(w, "step budget: %d\n", a.StepBudget)
			fmt.Fprintf(w, "tapes:       %d\n", len(prog.Tapes))
			fmt.Fprintf(w, "fingerprint: %s\n", tapemachine.Fingerprint(a))
			return nil
		},
	}
}
