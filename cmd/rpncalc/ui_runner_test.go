package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rpncalc/internal/driver"
)

// runUIWithTimeout fails the test instead of hanging when runWithUI never returns.
func runUIWithTimeout(t *testing.T, input string, paths []string, run batchFunc) ([]driver.BatchResult, error) {
	t.Helper()
	type result struct {
		res []driver.BatchResult
		err error
	}
	done := make(chan result, 1)
	go func() {
		res, err := runWithUI(context.Background(), strings.NewReader(input), &bytes.Buffer{}, "run", paths, run)
		done <- result{res, err}
	}()
	select {
	case r := <-done:
		return r.res, r.err
	case <-time.After(10 * time.Second):
		t.Fatal("runWithUI did not return")
		return nil, nil
	}
}

func TestRunWithUICtrlCCancelsBatch(t *testing.T) {
	paths := []string{"a.rpn", "b.rpn"}
	cancelled := make(chan struct{})
	_, err := runUIWithTimeout(t, "\x03", paths, func(ctx context.Context, sink driver.ProgressSink) ([]driver.BatchResult, error) {
		// больше событий, чем вмещает буфер канала
		for i := 0; i < 1000; i++ {
			sink(driver.ProgressEvent{Index: i % len(paths), Total: len(paths), Status: driver.ProgressRunning})
		}
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) || !errors.Is(err, errAborted) {
		t.Fatalf("err = %v, want abort", err)
	}
	select {
	case <-cancelled:
	default:
		t.Fatal("batch context was not cancelled")
	}
}

func TestRunWithUICompletes(t *testing.T) {
	paths := []string{"a.rpn", "b.rpn"}
	res, err := runUIWithTimeout(t, "", paths, func(ctx context.Context, sink driver.ProgressSink) ([]driver.BatchResult, error) {
		out := make([]driver.BatchResult, len(paths))
		for i, p := range paths {
			sink(driver.ProgressEvent{Index: i, Total: len(paths), Path: p, Status: driver.ProgressDone, Exprs: 1})
			out[i] = driver.BatchResult{Path: p}
		}
		return out, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[1].Path != "b.rpn" {
		t.Fatalf("results = %+v", res)
	}
}
