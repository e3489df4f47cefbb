// Package progress tracks a learner's counters and review ledger and moves
// them through learn and review events.
//
// Transition functions are pure: they take the current State and an instant
// and return the next State without touching the input. Service owns the
// single current State and writes it through to the snapshot store after
// every transition.
package progress

import (
	"time"

	"github.com/abhisek/wordnest/internal/spacedrep"
)

const (
	// DefaultDailyGoal is the number of new items a learner aims for per day.
	DefaultDailyGoal = 15

	// DefaultStars is the star balance of a brand-new learner.
	DefaultStars = 5
)

// Stats holds learner counters.
type Stats struct {
	Stars             int
	ItemsMastered     int
	StudyMinutes      int
	StreakDays        int // carried through unchanged; nothing here updates it
	LastActive        time.Time
	ItemsLearnedToday int
	DailyGoal         int
}

// State is the complete learner progress that gets persisted.
type State struct {
	Stats           Stats
	Ledger          *spacedrep.Ledger
	CurrentCategory string

	// WrongItems is the wrong-answer log written by quiz views.
	// It is stored and returned as-is.
	WrongItems []spacedrep.ReviewEntry
}

// Defaults returns the state of a learner with no saved progress.
func Defaults(now time.Time, category string, dailyGoal int) State {
	if dailyGoal <= 0 {
		dailyGoal = DefaultDailyGoal
	}
	return State{
		Stats: Stats{
			Stars:      DefaultStars,
			StreakDays: 1,
			LastActive: now,
			DailyGoal:  dailyGoal,
		},
		Ledger:          spacedrep.NewLedger(),
		CurrentCategory: category,
	}
}

// DailyProgress returns how far the learner is toward today's goal as a
// ratio in [0, 1], and whether the goal has been reached.
func DailyProgress(s Stats) (ratio float64, reached bool) {
	if s.DailyGoal <= 0 {
		return 1, true
	}
	ratio = float64(s.ItemsLearnedToday) / float64(s.DailyGoal)
	if ratio > 1 {
		ratio = 1
	}
	return ratio, s.ItemsLearnedToday >= s.DailyGoal
}
