// Package trace records what the evaluation driver is doing.
//
// Tracing is off by default. Enable it from the command line:
//
//	rpncalc run --trace=- --trace-level=detail exprs.rpn
//
// Tracers:
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events, dumped when something fails
//   - MultiTracer: fans out to several tracers
//
// Levels gate scopes: phase shows driver events, detail adds one span per
// expression, debug adds a point event per consumed token. Failure events
// pass every level except off.
//
// Tracers and the active span travel on context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.BeginCtx(ctx, trace.ScopeExpr, "expr")
//	defer span.End("")
package trace
