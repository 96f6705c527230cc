// Package trace is the structured event log of pwcheck.
//
// Commands, checker sessions, batch runs and individual evaluations emit
// span and point events through a Tracer carried in context.Context.
// Events never carry password text, only lengths, scores and categories.
//
// # Usage
//
//	pwcheck check --batch --trace=- --trace-level=debug < words.txt
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (file or stderr)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: only error events
//   - LevelInfo: commands and sessions
//   - LevelDebug: everything, including each evaluation
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeSession, "batch", 0)
//	defer span.End("")
package trace
