package progress

import (
	"time"

	"github.com/abhisek/wordnest/internal/spacedrep"
)

// RecordLearned records that itemID was taught at now.
//
// A first exposure starts tracking the item at stage 0 and counts it toward
// ItemsMastered and ItemsLearnedToday. Teaching an item that is already
// tracked puts it back to stage 0, graduated or not, without counting it
// again.
func RecordLearned(s State, itemID string, now time.Time) State {
	isNew := !s.Ledger.Has(itemID)

	s.Ledger = s.Ledger.With(spacedrep.ReviewEntry{
		ItemID:         itemID,
		LastReviewTime: now,
		Stage:          0,
	})
	if isNew {
		s.Stats.ItemsMastered++
		s.Stats.ItemsLearnedToday++
	}
	s.Stats.LastActive = now
	return s
}

// ApplyReview applies a review outcome for itemID using ladder.
// Items that were never learned are ignored.
func ApplyReview(s State, ladder spacedrep.Ladder, itemID string, success bool, now time.Time) State {
	s.Ledger = spacedrep.ApplyResult(s.Ledger, ladder, itemID, success, now)
	return s
}

// Rollover resets the daily counter when now falls on a different calendar
// day in loc than the last activity. It reports whether a reset happened.
func Rollover(s State, now time.Time, loc *time.Location) (State, bool) {
	if sameDay(s.Stats.LastActive, now, loc) {
		return s, false
	}
	s.Stats.ItemsLearnedToday = 0
	s.Stats.LastActive = now
	return s, true
}

// AddStars adds a reward amount to the star balance as given.
func AddStars(s State, n int) State {
	s.Stats.Stars += n
	return s
}

// SetCategory changes the category the learner is working through.
func SetCategory(s State, name string) State {
	s.CurrentCategory = name
	return s
}

// RecordMiss appends e to the wrong-answer log.
func RecordMiss(s State, e spacedrep.ReviewEntry) State {
	wrong := make([]spacedrep.ReviewEntry, len(s.WrongItems), len(s.WrongItems)+1)
	copy(wrong, s.WrongItems)
	s.WrongItems = append(wrong, e)
	return s
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
