package spacedrep

import (
	"sort"
	"time"
)

// DueItems returns the entries due for review at now, most overdue first.
// Ties are broken by item id. Graduated entries are never returned.
// The ledger is not modified.
func DueItems(ledger *Ledger, ladder Ladder, now time.Time) []ReviewEntry {
	type dueEntry struct {
		entry   ReviewEntry
		overdue time.Duration
	}
	var due []dueEntry

	for _, e := range ledger.Entries() {
		if e.IsDue(ladder, now) {
			due = append(due, dueEntry{entry: e, overdue: e.Overdue(ladder, now)})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].entry.ItemID < due[j].entry.ItemID
	})

	out := make([]ReviewEntry, len(due))
	for i, d := range due {
		out[i] = d.entry
	}
	return out
}

// NextDue returns the earliest time after now at which a tracked,
// non-graduated entry becomes due. ok is false when nothing is pending.
func NextDue(ledger *Ledger, ladder Ladder, now time.Time) (next time.Time, ok bool) {
	for _, e := range ledger.Entries() {
		at, tracked := e.DueAt(ladder)
		if !tracked || !at.After(now) {
			continue
		}
		if !ok || at.Before(next) {
			next, ok = at, true
		}
	}
	return next, ok
}

// ApplyResult returns the ledger after a review of itemID.
// Success moves the entry up one stage; failure sends it back to stage 0.
// Unknown and graduated items leave the ledger unchanged.
func ApplyResult(ledger *Ledger, ladder Ladder, itemID string, success bool, now time.Time) *Ledger {
	e, ok := ledger.Get(itemID)
	if !ok || ladder.IsGraduated(e.Stage) {
		return ledger
	}

	e.LastReviewTime = now
	if success {
		e.Stage++
	} else {
		e.Stage = 0
	}
	return ledger.With(e)
}

// Scheduler answers due-item queries for a fixed ladder. It remembers the
// last answer so repeated queries against the same ledger and instant are
// free; the result is the same as calling DueItems directly.
type Scheduler struct {
	ladder Ladder

	lastLedger *Ledger
	lastNow    time.Time
	lastDue    []ReviewEntry
}

// NewScheduler creates a scheduler for ladder.
func NewScheduler(ladder Ladder) *Scheduler {
	return &Scheduler{ladder: ladder}
}

// Ladder returns the scheduler's interval ladder.
func (s *Scheduler) Ladder() Ladder {
	return s.ladder
}

// Due returns the entries due at now. The returned slice is owned by the caller.
func (s *Scheduler) Due(ledger *Ledger, now time.Time) []ReviewEntry {
	if s.lastDue == nil || s.lastLedger != ledger || !s.lastNow.Equal(now) {
		s.lastLedger = ledger
		s.lastNow = now
		s.lastDue = DueItems(ledger, s.ladder, now)
	}
	out := make([]ReviewEntry, len(s.lastDue))
	copy(out, s.lastDue)
	return out
}
