package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"rpncalc/internal/driver"
)

const scriptExt = ".rpn"

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file|dir>...",
		Short: "Evaluate .rpn files line by line",
		Long: `Evaluate every non-blank, non-comment line of each file as an RPN expression.
Directories are searched recursively for *.rpn files. Files are evaluated in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: traced(runFiles),
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("precision", -1, "digits after formatting with %g, -1 for the shortest exact form")
	cmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	return cmd
}

func runFiles(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}
	opts.Jobs = s.Jobs

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	paths, err := collectScripts(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no %s files found", scriptExt)
	}

	if s.Cache {
		cache, err := driver.OpenResultCache("rpncalc")
		if err != nil {
			// без кэша тоже можно работать
			if !quiet(cmd) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: result cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	var batch []driver.BatchResult
	if shouldUseTUI(mode, cmd.OutOrStdout()) {
		batch, err = runBatchWithUI(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), "rpncalc run", paths, opts)
	} else {
		batch, err = driver.EvalBatch(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	results := make([]*driver.EvalResult, len(batch))
	for i := range batch {
		results[i] = batch[i].Result
	}
	if err := renderResults(cmd, s, results); err != nil {
		return err
	}

	exprs, failed := driver.Summarize(batch)
	if !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d files, %d expressions, %d failed\n", len(paths), exprs, failed)
		if opts.Cache != nil {
			hits, misses := opts.Cache.Stats()
			fmt.Fprintf(cmd.ErrOrStderr(), "cache: %d hits, %d misses\n", hits, misses)
		}
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

// collectScripts expands directories into their *.rpn files. Explicit file
// arguments are kept whatever their extension.
func collectScripts(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// пусть driver сообщит IO4001 для этого файла
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && filepath.Ext(path) == scriptExt {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}
	return paths, nil
}
