package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rpncalc/internal/version"
)

// errFailed is returned when at least one expression failed; the details were
// already printed as diagnostics.
var errFailed = errors.New("one or more expressions failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rpncalc",
		Short:         "Reverse Polish Notation calculator",
		Long:          `rpncalc evaluates RPN expressions such as "3 4 + 5 6 + *" from arguments, stdin or files`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := colorFor(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			color.NoColor = !enabled
			return nil
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output and print diagnostics one per line")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per source")
	pf.String("config", "", "path to rpncalc.toml (default: search upwards from the working directory)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 1024, "events kept by the ring tracer")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(newEvalCmd(), newRunCmd(), newTokenizeCmd(), newVersionCmd(), newCacheCmd())
	return root
}

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:], os.Stderr))
}

// execute runs root with args and maps the outcome to an exit status.
func execute(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errFailed) {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
