package spacedrep

import "time"

// ReviewEntry holds the spaced repetition state for a single item.
type ReviewEntry struct {
	ItemID         string
	LastReviewTime time.Time
	Stage          int
}

// DueAt returns when the entry next becomes due. ok is false once graduated.
func (e ReviewEntry) DueAt(l Ladder) (t time.Time, ok bool) {
	d, ok := l.Interval(e.Stage)
	if !ok {
		return time.Time{}, false
	}
	return e.LastReviewTime.Add(d), true
}

// IsDue returns true if the entry is at or past its review time.
// Graduated entries are never due.
func (e ReviewEntry) IsDue(l Ladder, now time.Time) bool {
	at, ok := e.DueAt(l)
	if !ok {
		return false
	}
	return !now.Before(at)
}

// Overdue returns how far past due the entry is. Negative when not yet due.
func (e ReviewEntry) Overdue(l Ladder, now time.Time) time.Duration {
	at, ok := e.DueAt(l)
	if !ok {
		return 0
	}
	return now.Sub(at)
}

// ReviewStatus describes an entry's review status for display.
type ReviewStatus string

const (
	ReviewNotDue    ReviewStatus = "not_due"
	ReviewDue       ReviewStatus = "due"
	ReviewGraduated ReviewStatus = "graduated"
)

// Status returns the review status for UI display.
func (e ReviewEntry) Status(l Ladder, now time.Time) ReviewStatus {
	if l.IsGraduated(e.Stage) {
		return ReviewGraduated
	}
	if e.IsDue(l, now) {
		return ReviewDue
	}
	return ReviewNotDue
}
