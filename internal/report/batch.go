package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"pwcheck/internal/strength"
	"pwcheck/internal/trace"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

type inputLine struct {
	number int
	text   string
}

// EvaluateLines evaluates every non-empty line of r using up to jobs
// goroutines (GOMAXPROCS when jobs <= 0). Records keep input order and
// carry their 1-based line number.
func EvaluateLines(ctx context.Context, r io.Reader, jobs int) ([]Record, error) {
	tracer := trace.FromContext(ctx)
	ctx, span := trace.Start(ctx, trace.ScopeSession, "batch")

	lines, err := readLines(r)
	if err != nil {
		span.Fail(err)
		return nil, err
	}
	if len(lines) == 0 {
		span.SetInt("records", 0).End("")
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine writes only its own index
	records := make([]Record, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			a := strength.Evaluate(line.text)
			rec, err := NewRecord(line.number, a)
			if err != nil {
				return fmt.Errorf("line %d: %w", line.number, err)
			}
			records[i] = rec
			trace.Point(tracer, trace.ScopeEval, "evaluate", span.ID(), trace.Fields{}.
				Int("line", line.number).
				Int("length", a.Length).
				Str("category", a.Category.Key()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.Fail(err)
		return nil, err
	}

	span.SetInt("records", len(records)).End("")
	return records, nil
}

func readLines(r io.Reader) ([]inputLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	var lines []inputLine
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSuffix(sc.Text(), "\r")
		// whitespace is a legal password; only empty lines are skipped
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{number: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input at line %d: %w", n+1, err)
	}
	return lines, nil
}
