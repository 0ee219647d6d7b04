package driver

import (
	"context"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"rpncalc/internal/diag"
	"rpncalc/internal/source"
	"rpncalc/internal/trace"
)

// BatchResult is one file of EvalBatch. Result is always set; a file that
// failed to load carries a single IO4001 diagnostic and no expressions.
type BatchResult struct {
	Path   string
	Result *EvalResult
	Err    error // load error, if any
}

// EvalBatch evaluates paths concurrently, at most opts.Jobs at a time.
// Results are returned in the order of paths. The only error returned is
// context cancellation; per-file problems are reported in each result.
func EvalBatch(ctx context.Context, paths []string, opts Options) ([]BatchResult, error) {
	results := make([]BatchResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "batch")
	span.WithExtra("files", strconv.Itoa(len(paths))).WithExtra("jobs", strconv.Itoa(jobs))
	defer span.End("")

	total := len(paths)
	for i, path := range paths {
		opts.Progress.emit(ProgressEvent{Index: i, Total: total, Path: path, Status: ProgressQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, total))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts.Progress.emit(ProgressEvent{Index: i, Total: total, Path: path, Status: ProgressRunning})

			res, err := EvalFile(gctx, path, opts)
			if err != nil && res == nil {
				// файл не загрузился: отдаём результат с IO-диагностикой
				res = loadFailure(path, err, opts)
				results[i] = BatchResult{Path: path, Result: res, Err: err}
				opts.Progress.emit(ProgressEvent{Index: i, Total: total, Path: path, Status: ProgressFailed})
				return nil
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = BatchResult{Path: path, Result: res}
			if err != nil {
				return err
			}

			status := ProgressDone
			if res.Failed() > 0 {
				status = ProgressFailed
			}
			opts.Progress.emit(ProgressEvent{
				Index: i, Total: total, Path: path, Status: status,
				Exprs: len(res.Exprs), Failed: res.Failed(),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func loadFailure(path string, err error, opts Options) *EvalResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, nil)
	res := newEvalResult(fs, id, opts)
	diag.ReportError(res.reporter, diag.IOLoadFileError, source.Span{File: id}, err.Error()).Emit()
	return res
}

// Summarize counts expressions and failures across a batch, including load
// failures as one failure each.
func Summarize(results []BatchResult) (exprs, failed int) {
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if r.Result == nil {
			continue
		}
		exprs += len(r.Result.Exprs)
		failed += r.Result.Failed()
	}
	return exprs, failed
}
