package driver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"rpncalc/internal/diag"
	"rpncalc/internal/lexer"
	"rpncalc/internal/observ"
	"rpncalc/internal/source"
	"rpncalc/internal/token"
	"rpncalc/internal/trace"
	"rpncalc/internal/vm"
)

// ExprResult is the outcome of one expression.
type ExprResult struct {
	Line   uint32      // 1-based line in the source file
	Span   source.Span // the whole line
	Expr   string
	Tokens []token.Token
	Value  float64
	Err    error // *vm.EvalError on failure
	Cached bool  // outcome came from the result cache
}

func (r *ExprResult) OK() bool { return r.Err == nil }

// EvalResult holds everything produced for one source.
type EvalResult struct {
	FileSet *source.FileSet
	File    *source.File
	Exprs   []ExprResult
	Bag     *diag.Bag
	Timer   *observ.Timer

	reporter diag.Reporter
}

// Failed counts expressions that did not produce a value.
func (r *EvalResult) Failed() int {
	n := 0
	for i := range r.Exprs {
		if !r.Exprs[i].OK() {
			n++
		}
	}
	return n
}

func newEvalResult(fs *source.FileSet, id source.FileID, opts Options) *EvalResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	return &EvalResult{
		FileSet:  fs,
		File:     fs.Get(id),
		Bag:      bag,
		Timer:    observ.NewTimer(),
		reporter: diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
	}
}

// EvalString evaluates expr as a single expression. Newlines inside expr are
// ordinary whitespace. name labels the virtual source in diagnostics.
func EvalString(ctx context.Context, name, expr string, opts Options) *EvalResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(expr))
	res := newEvalResult(fs, id, opts)

	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "eval:"+name)
	sp := source.Span{File: id, End: contentLen(res.File)}
	res.Exprs = append(res.Exprs, res.evalSpan(ctx, sp, 1, opts))
	res.finish(opts)
	span.WithExtra("failed", strconv.Itoa(res.Failed())).End("")
	return res
}

// EvalFile evaluates every non-blank line of path as its own expression.
// Lines whose first non-space character is '#' are comments.
func EvalFile(ctx context.Context, path string, opts Options) (*EvalResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return evalLines(ctx, newEvalResult(fs, id, opts), "file:"+path, opts)
}

// EvalLines is EvalFile over in-memory content, e.g. stdin.
func EvalLines(ctx context.Context, name string, content []byte, opts Options) (*EvalResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return evalLines(ctx, newEvalResult(fs, id, opts), "lines:"+name, opts)
}

func evalLines(ctx context.Context, res *EvalResult, spanName string, opts Options) (*EvalResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, spanName)
	for ln := uint32(1); ln <= res.File.LineCount(); ln++ {
		if err := ctx.Err(); err != nil {
			span.End("cancelled")
			return res, err
		}
		sp := res.File.LineSpan(ln)
		text := strings.TrimSpace(res.File.Slice(sp))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		res.Exprs = append(res.Exprs, res.evalSpan(ctx, sp, ln, opts))
	}
	res.finish(opts)
	span.WithExtra("exprs", strconv.Itoa(len(res.Exprs))).
		WithExtra("failed", strconv.Itoa(res.Failed())).
		End("")
	return res, nil
}

func (r *EvalResult) evalSpan(ctx context.Context, sp source.Span, line uint32, opts Options) ExprResult {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeExpr, "expr")
	span.WithExtra("line", strconv.FormatUint(uint64(line), 10))
	tracer := trace.FromContext(ctx)

	res := ExprResult{Line: line, Span: sp, Expr: r.File.Slice(sp)}
	timer := observ.NewTimer()

	lexDone := timer.Track(observ.PhaseLex)
	res.Tokens = lexer.LexRange(r.File, sp, lexer.Options{Reporter: r.reporter, MaxTokenLen: opts.MaxTokenLen})
	lexDone(strconv.Itoa(len(res.Tokens)) + " tokens")

	evalDone := timer.Track(observ.PhaseEval)
	key := cacheKey(res.Tokens)
	if out, ok := opts.Cache.Lookup(key); ok {
		res.Value, res.Err = out.restore(res.Tokens)
		res.Cached = true
	} else {
		var m vm.Machine
		if tracer.Level().Allows(trace.KindPoint, trace.ScopeToken) {
			parent := span.ID()
			m.OnStep = func(s vm.Step) {
				trace.Point(tracer, trace.ScopeToken, "token", parent, s.Token.Text, map[string]string{
					"value": strconv.FormatFloat(s.Value, 'g', -1, 64),
					"depth": strconv.Itoa(s.Depth),
				})
			}
		}
		res.Value, res.Err = m.Run(res.Tokens)
		if err := opts.Cache.Store(key, res.Value, res.Err); err != nil {
			diag.ReportWarning(r.reporter, diag.IOCacheError, sp, "result cache: "+err.Error()).Emit()
		}
	}
	evalDone("")
	r.Timer.Merge(timer)

	if res.Err != nil {
		r.reportEvalError(&res)
		trace.Failure(tracer, trace.ScopeExpr, "expr", span.ID(), res.Err.Error())
		span.End(res.Err.Error())
		return res
	}
	if math.IsInf(res.Value, 0) || math.IsNaN(res.Value) {
		diag.ReportWarning(r.reporter, diag.EvalNonFinite, tokensSpan(res.Tokens, sp),
			"result is "+strconv.FormatFloat(res.Value, 'g', -1, 64)).Emit()
	}
	span.WithExtra("cached", strconv.FormatBool(res.Cached)).
		End(strconv.FormatFloat(res.Value, 'g', -1, 64))
	return res
}

// operatorList is "+ - * /", spelled from the token kinds.
var operatorList = strings.Join([]string{
	token.Plus.Symbol(), token.Minus.Symbol(), token.Star.Symbol(), token.Slash.Symbol(),
}, " ")

func (r *EvalResult) reportEvalError(res *ExprResult) {
	var evalErr *vm.EvalError
	if !errors.As(res.Err, &evalErr) {
		diag.ReportError(r.reporter, diag.UnknownCode, res.Span, res.Err.Error()).Emit()
		return
	}
	msg := evalErr.Error()
	switch {
	case errors.Is(evalErr, vm.ErrInvalidToken):
		tok := evalErr.Token
		diag.ReportError(r.reporter, diag.EvalInvalidToken, tok.Span, msg).
			WithNote(tok.Span, fmt.Sprintf("%q is neither an unsigned integer nor one of %s", tok.Text, operatorList)).
			Emit()
	case evalErr.AtEnd():
		whole := tokensSpan(res.Tokens, res.Span)
		diag.ReportError(r.reporter, diag.EvalArity, whole, msg).
			WithNote(whole, fmt.Sprintf("%d values left on the stack, expected 1", evalErr.Depth)).
			Emit()
	default:
		tok := evalErr.Token
		diag.ReportError(r.reporter, diag.EvalArity, tok.Span, msg).
			WithNote(tok.Span, fmt.Sprintf("%q needs 2 operands, stack has %d", tok.Kind.Symbol(), evalErr.Depth)).
			Emit()
	}
}

func (r *EvalResult) finish(opts Options) {
	if opts.Timings {
		report := r.Timer.Report()
		appendTimingDiagnostic(r.Bag, r.File.ID, timingPayload{
			Kind:    "file",
			Path:    r.File.Path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	r.Bag.Sort()
}

// tokensSpan covers all tokens, or returns fallback when there are none.
func tokensSpan(tokens []token.Token, fallback source.Span) source.Span {
	if len(tokens) == 0 {
		return fallback
	}
	return tokens[0].Span.Cover(tokens[len(tokens)-1].Span)
}

func contentLen(f *source.File) uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}
