package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rpncalc/internal/diagfmt"
	"rpncalc/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [expr]",
		Short: "Show the classified tokens of an expression",
		Long:  `Split an expression into tokens and print each with its kind and position. Without arguments stdin is read.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  traced(runTokenize),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	name, input := "<arg 1>", ""
	if len(args) == 1 && args[0] != "-" {
		input = args[0]
	} else {
		data, err := readAllStdin(cmd)
		if err != nil {
			return err
		}
		name, input = "<stdin>", string(data)
	}

	res := driver.TokenizeString(name, input, opts)
	switch strings.ToLower(format) {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, res.FileSet); err != nil {
			return err
		}
		if len(res.Bag.Items()) > 0 && !quiet(cmd) {
			color, err := colorFor(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: color, ShowNotes: true})
		}
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens, res.FileSet)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
