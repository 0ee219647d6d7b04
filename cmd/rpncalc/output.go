package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rpncalc/internal/diag"
	"rpncalc/internal/diagfmt"
	"rpncalc/internal/driver"
)

// driverOptions collects the persistent flags the driver cares about.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return driver.Options{MaxDiagnostics: maxDiagnostics, Timings: timings}, nil
}

func colorFor(cmd *cobra.Command, w io.Writer) (bool, error) {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return readColorMode(value, w)
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Flags().GetBool("quiet")
	return q
}

func resultRows(results ...*driver.EvalResult) []diagfmt.ResultRow {
	var rows []diagfmt.ResultRow
	for _, res := range results {
		if res == nil || res.File == nil {
			continue
		}
		for _, e := range res.Exprs {
			rows = append(rows, diagfmt.ResultRow{
				Path:  res.File.Path,
				Line:  e.Line,
				Expr:  e.Expr,
				Value: e.Value,
				Err:   e.Err,
			})
		}
	}
	return rows
}

// renderResults writes the result table to stdout and, for pretty output,
// the diagnostics of every result to stderr.
func renderResults(cmd *cobra.Command, s settings, results []*driver.EvalResult) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	outColor, err := colorFor(cmd, stdout)
	if err != nil {
		return err
	}
	errColor, err := colorFor(cmd, stderr)
	if err != nil {
		return err
	}

	rows := resultRows(results...)
	ropts := diagfmt.ResultOpts{Color: outColor, Precision: s.Precision}
	if s.Format == "json" {
		if err := diagfmt.FormatResultsJSON(stdout, rows, ropts); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res == nil || res.Bag == nil || len(res.Bag.Items()) == 0 {
				continue
			}
			// --quiet: одна строка на диагностику, без сниппетов
			if quiet(cmd) {
				if err := diag.WriteShort(stderr, res.Bag.Items(), res.FileSet, false); err != nil {
					return err
				}
				continue
			}
			diagfmt.Pretty(stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: errColor, ShowNotes: true})
		}
		if err := diagfmt.FormatResultsPretty(stdout, rows, ropts); err != nil {
			return err
		}
	}

	// в pretty тайминги уже пришли диагностикой OBS6001
	if timings, _ := cmd.Flags().GetBool("timings"); timings && s.Format == "json" && !quiet(cmd) {
		for _, res := range results {
			if res == nil || res.Timer == nil || res.File == nil {
				continue
			}
			fmt.Fprintf(stderr, "%s %s", res.File.Path, res.Timer.Summary())
		}
	}
	return nil
}

func anyFailed(results []*driver.EvalResult) bool {
	for _, res := range results {
		if res != nil && res.Failed() > 0 {
			return true
		}
	}
	return false
}

func readAllStdin(cmd *cobra.Command) ([]byte, error) {
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
