package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimer_Report(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	read := tm.Begin("read")
	tm.End(read, "")
	eval := tm.Begin("evaluate")
	tm.End(eval, "3 records")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(r.Stages))
	}
	if r.Stages[0].DurationMS != 2 || r.Stages[1].DurationMS != 2 {
		t.Fatalf("durations = %+v", r.Stages)
	}
	if r.TotalMS != 4 {
		t.Fatalf("TotalMS = %v, want 4", r.TotalMS)
	}
	if r.Stages[1].Note != "3 records" {
		t.Fatalf("note = %q", r.Stages[1].Note)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "read", "evaluate", "// 3 records", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestTimer_Empty(t *testing.T) {
	tm := NewTimer()
	if r := tm.Report(); r.TotalMS != 0 || len(r.Stages) != 0 {
		t.Fatalf("report = %+v", r)
	}
}
