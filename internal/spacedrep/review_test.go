package spacedrep

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestIsDue_BeforeInterval(t *testing.T) {
	e := ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 0}
	if e.IsDue(DefaultLadder, t0.Add(59*time.Minute)) {
		t.Error("expected not due before interval elapses")
	}
}

func TestIsDue_ExactBoundary(t *testing.T) {
	e := ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 1}
	if !e.IsDue(DefaultLadder, t0.Add(24*time.Hour)) {
		t.Error("expected due exactly at the interval boundary")
	}
}

func TestIsDue_Graduated(t *testing.T) {
	e := ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 6}
	if e.IsDue(DefaultLadder, t0.Add(10*365*24*time.Hour)) {
		t.Error("expected graduated entry never due")
	}
}

func TestOverdue(t *testing.T) {
	e := ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 0}
	if got := e.Overdue(DefaultLadder, t0.Add(3*time.Hour)); got != 2*time.Hour {
		t.Errorf("Overdue() = %s, want 2h", got)
	}
	if got := e.Overdue(DefaultLadder, t0.Add(30*time.Minute)); got != -30*time.Minute {
		t.Errorf("Overdue() = %s, want -30m", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		after time.Duration
		want  ReviewStatus
	}{
		{"not due", 0, 30 * time.Minute, ReviewNotDue},
		{"due", 0, time.Hour, ReviewDue},
		{"graduated", 6, 0, ReviewGraduated},
		{"graduated long after", 7, 1000 * time.Hour, ReviewGraduated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: tt.stage}
			if got := e.Status(DefaultLadder, t0.Add(tt.after)); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLedger_WithDoesNotMutate(t *testing.T) {
	base := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0})
	next := base.With(ReviewEntry{ItemID: "b", LastReviewTime: t0})

	if base.Len() != 1 {
		t.Errorf("base.Len() = %d, want 1", base.Len())
	}
	if next.Len() != 2 {
		t.Errorf("next.Len() = %d, want 2", next.Len())
	}
	if base.Has("b") {
		t.Error("expected base ledger unchanged")
	}
}

func TestLedger_NilIsEmpty(t *testing.T) {
	var l *Ledger
	if l.Len() != 0 || l.Has("a") || len(l.IDs()) != 0 {
		t.Error("expected nil ledger to behave as empty")
	}
	l = l.With(ReviewEntry{ItemID: "a"})
	if !l.Has("a") {
		t.Error("expected With on nil ledger to insert")
	}
}

func TestLedger_IDsSorted(t *testing.T) {
	l := NewLedger(
		ReviewEntry{ItemID: "c"},
		ReviewEntry{ItemID: "a"},
		ReviewEntry{ItemID: "b"},
	)
	ids := l.IDs()
	want := []string{"a", "b", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
}
