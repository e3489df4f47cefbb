package spacedrep

import (
	"testing"
	"time"
)

func TestDueItems_ExcludesGraduated(t *testing.T) {
	l := NewLedger(
		ReviewEntry{ItemID: "grad", LastReviewTime: t0, Stage: 6},
		ReviewEntry{ItemID: "past", LastReviewTime: t0, Stage: 9},
		ReviewEntry{ItemID: "due", LastReviewTime: t0, Stage: 5},
	)
	now := t0.Add(365 * 24 * time.Hour)
	due := DueItems(l, DefaultLadder, now)
	if len(due) != 1 || due[0].ItemID != "due" {
		t.Fatalf("DueItems() = %+v, want only %q", due, "due")
	}
}

func TestDueItems_MostOverdueFirst(t *testing.T) {
	l := NewLedger(
		ReviewEntry{ItemID: "b", LastReviewTime: t0.Add(-2 * time.Hour), Stage: 0}, // 1h overdue
		ReviewEntry{ItemID: "a", LastReviewTime: t0.Add(-2 * time.Hour), Stage: 0}, // 1h overdue, tie
		ReviewEntry{ItemID: "c", LastReviewTime: t0.Add(-48 * time.Hour), Stage: 1}, // 24h overdue
		ReviewEntry{ItemID: "d", LastReviewTime: t0, Stage: 0},                      // not due
	)
	due := DueItems(l, DefaultLadder, t0)
	want := []string{"c", "a", "b"}
	if len(due) != len(want) {
		t.Fatalf("got %d due, want %d", len(due), len(want))
	}
	for i, id := range want {
		if due[i].ItemID != id {
			t.Errorf("due[%d] = %q, want %q", i, due[i].ItemID, id)
		}
	}
}

func TestDueItems_Idempotent(t *testing.T) {
	l := NewLedger(
		ReviewEntry{ItemID: "a", LastReviewTime: t0.Add(-5 * time.Hour)},
		ReviewEntry{ItemID: "b", LastReviewTime: t0.Add(-3 * time.Hour)},
	)
	first := DueItems(l, DefaultLadder, t0)
	second := DueItems(l, DefaultLadder, t0)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
	if l.Len() != 2 {
		t.Error("DueItems must not modify the ledger")
	}
}

func TestDueItems_EmptyLedger(t *testing.T) {
	if due := DueItems(nil, DefaultLadder, t0); len(due) != 0 {
		t.Errorf("expected no due items, got %d", len(due))
	}
}

func TestApplyResult_SuccessAdvancesOneStage(t *testing.T) {
	for stage := 0; stage < len(DefaultLadder); stage++ {
		l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: stage})
		now := t0.Add(time.Hour)
		got, _ := ApplyResult(l, DefaultLadder, "a", true, now).Get("a")
		if got.Stage != stage+1 {
			t.Errorf("stage %d success -> %d, want %d", stage, got.Stage, stage+1)
		}
		if !got.LastReviewTime.Equal(now) {
			t.Errorf("stage %d success did not update LastReviewTime", stage)
		}
	}
}

func TestApplyResult_FailureResetsToZero(t *testing.T) {
	for _, stage := range []int{0, 1, 4, 5} {
		l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: stage})
		now := t0.Add(time.Hour)
		got, _ := ApplyResult(l, DefaultLadder, "a", false, now).Get("a")
		if got.Stage != 0 {
			t.Errorf("stage %d failure -> %d, want 0", stage, got.Stage)
		}
		if !got.LastReviewTime.Equal(now) {
			t.Errorf("stage %d failure did not update LastReviewTime", stage)
		}
	}
}

func TestApplyResult_FinalStageGraduates(t *testing.T) {
	l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 5})
	l = ApplyResult(l, DefaultLadder, "a", true, t0.Add(31*24*time.Hour))
	got, _ := l.Get("a")
	if got.Stage != DefaultLadder.GraduationStage() {
		t.Fatalf("stage = %d, want graduated %d", got.Stage, DefaultLadder.GraduationStage())
	}
	if due := DueItems(l, DefaultLadder, t0.Add(10*365*24*time.Hour)); len(due) != 0 {
		t.Errorf("graduated item resurfaced: %+v", due)
	}
}

func TestApplyResult_UnknownItemIsNoop(t *testing.T) {
	l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0})
	got := ApplyResult(l, DefaultLadder, "missing", true, t0.Add(time.Hour))
	if got != l {
		t.Error("expected the same ledger back for an unknown item")
	}
}

func TestApplyResult_GraduatedIsAbsorbing(t *testing.T) {
	l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 6})
	for _, success := range []bool{true, false} {
		got, _ := ApplyResult(l, DefaultLadder, "a", success, t0.Add(time.Hour)).Get("a")
		if got.Stage != 6 || !got.LastReviewTime.Equal(t0) {
			t.Errorf("success=%v changed graduated entry: %+v", success, got)
		}
	}
}

func TestApplyResult_DoesNotMutateInput(t *testing.T) {
	l := NewLedger(ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 2})
	_ = ApplyResult(l, DefaultLadder, "a", true, t0.Add(time.Hour))
	got, _ := l.Get("a")
	if got.Stage != 2 {
		t.Errorf("input ledger mutated: stage = %d", got.Stage)
	}
}

func TestScenario_TwoStageLadder(t *testing.T) {
	ladder := Ladder{time.Hour, 24 * time.Hour}
	l := NewLedger(ReviewEntry{ItemID: "x", LastReviewTime: t0, Stage: 0})

	if due := DueItems(l, ladder, t0.Add(30*time.Minute)); len(due) != 0 {
		t.Fatal("x should not be due at 30m")
	}

	at61 := t0.Add(61 * time.Minute)
	if due := DueItems(l, ladder, at61); len(due) != 1 {
		t.Fatal("x should be due at 61m")
	}
	l = ApplyResult(l, ladder, "x", true, at61)
	x, _ := l.Get("x")
	if x.Stage != 1 || !x.LastReviewTime.Equal(at61) {
		t.Fatalf("after success: %+v", x)
	}

	if due := DueItems(l, ladder, at61.Add(23*time.Hour)); len(due) != 0 {
		t.Fatal("x should not be due at 61m+23h")
	}

	at25h := at61.Add(25 * time.Hour)
	if due := DueItems(l, ladder, at25h); len(due) != 1 {
		t.Fatal("x should be due at 61m+25h")
	}
	l = ApplyResult(l, ladder, "x", false, at25h)
	x, _ = l.Get("x")
	if x.Stage != 0 || !x.LastReviewTime.Equal(at25h) {
		t.Fatalf("after failure: %+v", x)
	}
}

func TestNextDue(t *testing.T) {
	l := NewLedger(
		ReviewEntry{ItemID: "a", LastReviewTime: t0, Stage: 1},
		ReviewEntry{ItemID: "b", LastReviewTime: t0, Stage: 0},
		ReviewEntry{ItemID: "g", LastReviewTime: t0, Stage: 6},
	)
	next, ok := NextDue(l, DefaultLadder, t0.Add(time.Minute))
	if !ok {
		t.Fatal("expected a pending review")
	}
	if !next.Equal(t0.Add(time.Hour)) {
		t.Errorf("NextDue() = %s, want %s", next, t0.Add(time.Hour))
	}

	if _, ok := NextDue(NewLedger(ReviewEntry{ItemID: "g", Stage: 6}), DefaultLadder, t0); ok {
		t.Error("expected nothing pending when all graduated")
	}
}

func TestScheduler_MemoMatchesDirect(t *testing.T) {
	s := NewScheduler(DefaultLadder)
	l := NewLedger(
		ReviewEntry{ItemID: "a", LastReviewTime: t0.Add(-2 * time.Hour)},
		ReviewEntry{ItemID: "b", LastReviewTime: t0},
	)

	first := s.Due(l, t0)
	first[0].Stage = 99 // caller owns the slice
	second := s.Due(l, t0)
	direct := DueItems(l, DefaultLadder, t0)

	if len(second) != 1 || second[0] != direct[0] {
		t.Errorf("memoized result %+v differs from direct %+v", second, direct)
	}

	later := s.Due(l, t0.Add(2*time.Hour))
	if len(later) != 2 {
		t.Errorf("expected recompute for new instant, got %d due", len(later))
	}

	l2 := ApplyResult(l, DefaultLadder, "a", true, t0)
	if got := s.Due(l2, t0); len(got) != 0 {
		t.Errorf("expected recompute for new ledger, got %+v", got)
	}
}
