package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rpncalc/internal/driver"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate RPN expressions",
		Long: `Evaluate each argument as one RPN expression, e.g. rpncalc eval "3 4 + 5 6 + *".
With "-" (or no arguments) every non-blank line of stdin is an expression.`,
		RunE: traced(runEval),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("precision", -1, "digits after formatting with %g, -1 for the shortest exact form")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	ctx := cmd.Context()
	results := make([]*driver.EvalResult, 0, len(args))
	stdinUsed := false
	for i, arg := range args {
		if arg == "-" {
			if stdinUsed {
				return fmt.Errorf("stdin given more than once")
			}
			stdinUsed = true
			data, err := readAllStdin(cmd)
			if err != nil {
				return err
			}
			res, err := driver.EvalLines(ctx, "<stdin>", data, opts)
			if err != nil {
				return err
			}
			results = append(results, res)
			continue
		}
		results = append(results, driver.EvalString(ctx, fmt.Sprintf("<arg %d>", i+1), arg, opts))
	}

	if err := renderResults(cmd, s, results); err != nil {
		return err
	}
	if anyFailed(results) {
		return errFailed
	}
	return nil
}
