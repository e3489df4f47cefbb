package progress

import (
	"time"

	"github.com/abhisek/wordnest/internal/spacedrep"
	"github.com/abhisek/wordnest/internal/store"
)

// SnapshotData exports s in the persisted format.
func SnapshotData(s State) store.SnapshotData {
	stars := s.Stats.Stars
	streak := s.Stats.StreakDays
	goal := s.Stats.DailyGoal

	data := store.SnapshotData{
		Stats: store.StatsData{
			Stars:             &stars,
			WordsMastered:     s.Stats.ItemsMastered,
			StudyMinutes:      s.Stats.StudyMinutes,
			Streak:            &streak,
			LastActive:        s.Stats.LastActive.UTC(),
			WordsLearnedToday: s.Stats.ItemsLearnedToday,
			DailyGoal:         &goal,
		},
		CurrentCategory: s.CurrentCategory,
		WrongWords:      make([]store.ReviewEntryData, 0, len(s.WrongItems)),
		ReviewData:      make(map[string]store.ReviewEntryData, s.Ledger.Len()),
	}
	for _, e := range s.WrongItems {
		data.WrongWords = append(data.WrongWords, entryData(e))
	}
	for _, e := range s.Ledger.Entries() {
		data.ReviewData[e.ItemID] = entryData(e)
	}
	return data
}

// FromSnapshot rebuilds a State from persisted data. Fields missing from
// older snapshots, and an empty category, take their values from defaults.
func FromSnapshot(data store.SnapshotData, defaults State) State {
	s := defaults

	s.Stats.ItemsMastered = data.Stats.WordsMastered
	s.Stats.StudyMinutes = data.Stats.StudyMinutes
	s.Stats.LastActive = data.Stats.LastActive
	s.Stats.ItemsLearnedToday = data.Stats.WordsLearnedToday
	if data.Stats.Stars != nil {
		s.Stats.Stars = *data.Stats.Stars
	}
	if data.Stats.Streak != nil {
		s.Stats.StreakDays = *data.Stats.Streak
	}
	if data.Stats.DailyGoal != nil {
		s.Stats.DailyGoal = *data.Stats.DailyGoal
	}
	if data.CurrentCategory != "" {
		s.CurrentCategory = data.CurrentCategory
	}

	entries := make([]spacedrep.ReviewEntry, 0, len(data.ReviewData))
	for id, rd := range data.ReviewData {
		e := reviewEntry(rd)
		e.ItemID = id // the map key is authoritative
		entries = append(entries, e)
	}
	s.Ledger = spacedrep.NewLedger(entries...)

	s.WrongItems = nil
	for _, rd := range data.WrongWords {
		s.WrongItems = append(s.WrongItems, reviewEntry(rd))
	}
	return s
}

func entryData(e spacedrep.ReviewEntry) store.ReviewEntryData {
	return store.ReviewEntryData{
		WordID:         e.ItemID,
		LastReviewTime: e.LastReviewTime.UnixMilli(),
		Stage:          e.Stage,
	}
}

func reviewEntry(rd store.ReviewEntryData) spacedrep.ReviewEntry {
	return spacedrep.ReviewEntry{
		ItemID:         rd.WordID,
		LastReviewTime: time.UnixMilli(rd.LastReviewTime),
		Stage:          rd.Stage,
	}
}
