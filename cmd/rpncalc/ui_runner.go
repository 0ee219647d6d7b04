package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rpncalc/internal/driver"
	"rpncalc/internal/ui"
)

// errAborted is returned when the user quits the progress UI mid-batch.
var errAborted = fmt.Errorf("interrupted: %w", context.Canceled)

// batchFunc runs a batch, reporting progress through sink.
type batchFunc func(ctx context.Context, sink driver.ProgressSink) ([]driver.BatchResult, error)

type batchOutcome struct {
	results []driver.BatchResult
	err     error
}

// runBatchWithUI runs EvalBatch while a Bubble Tea program renders progress.
func runBatchWithUI(ctx context.Context, in io.Reader, out io.Writer, title string, paths []string, opts driver.Options) ([]driver.BatchResult, error) {
	return runWithUI(ctx, in, out, title, paths, func(ctx context.Context, sink driver.ProgressSink) ([]driver.BatchResult, error) {
		opts.Progress = sink
		return driver.EvalBatch(ctx, paths, opts)
	})
}

func runWithUI(ctx context.Context, in io.Reader, out io.Writer, title string, paths []string, run batchFunc) ([]driver.BatchResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan batchOutcome, 1)
	go func() {
		// после отмены события больше никто не читает
		sink := func(ev driver.ProgressEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}
		res, err := run(ctx, sink)
		close(events)
		outcomeCh <- batchOutcome{results: res, err: err}
	}()

	progOpts := []tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx)}
	if in != nil && in != os.Stdin {
		progOpts = append(progOpts, tea.WithInput(in))
	}
	final, uiErr := tea.NewProgram(ui.NewProgressModel(title, paths, events), progOpts...).Run()
	aborted := uiErr == nil && ui.Aborted(final)
	if aborted || uiErr != nil {
		cancel()
	}
	// UI больше не читает канал; дочитываем, пока batch не закроет его
	for range events {
	}
	outcome := <-outcomeCh

	switch {
	case aborted:
		return outcome.results, errAborted
	case uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled):
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
