package store

import (
	"context"
	"encoding/json"
	"time"
)

// FormatVersion is the snapshot wire format written by this build.
// Snapshots with a different major version are treated as corrupt.
const FormatVersion = "v1.0.0"

// SnapshotData captures the full learner state at a point in time.
// Field names follow the on-disk format shared with earlier clients.
type SnapshotData struct {
	Version         string                     `json:"version,omitempty"`
	Stats           StatsData                  `json:"stats"`
	CurrentCategory string                     `json:"currentCategory"`
	WrongWords      []ReviewEntryData          `json:"wrongWords"`
	ReviewData      map[string]ReviewEntryData `json:"reviewData"`
}

// StatsData holds learner counters. Stars, Streak and DailyGoal are nil when
// absent from older snapshots so the loader can fall back to defaults.
// A missing LastActive decodes as the zero time, which is never today.
type StatsData struct {
	Stars             *int      `json:"stars,omitempty"`
	WordsMastered     int       `json:"wordsMastered"`
	StudyMinutes      int       `json:"studyMinutes"`
	Streak            *int      `json:"streak,omitempty"`
	LastActive        time.Time `json:"lastActive"`
	WordsLearnedToday int       `json:"wordsLearnedToday"`
	DailyGoal         *int      `json:"dailyGoal,omitempty"`
}

// ReviewEntryData is the persisted form of a review entry.
// LastReviewTime is Unix milliseconds.
type ReviewEntryData struct {
	WordID         string `json:"wordId"`
	LastReviewTime int64  `json:"lastReviewTime"`
	Stage          int    `json:"stage"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        string
	Profile   string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData

	// Raw is the stored encoding of Data, set by Latest.
	Raw json.RawMessage
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for snap.Profile. ID and Sequence are
	// assigned by the repo and written back to snap.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for profile, or nil if none
	// exist. Undecodable data yields an error matching ErrSnapshotCorrupt.
	Latest(ctx context.Context, profile string) (*Snapshot, error)

	// Prune deletes all but the keep most recent snapshots for profile.
	Prune(ctx context.Context, profile string, keep int) error

	// Delete removes every snapshot for profile.
	Delete(ctx context.Context, profile string) error
}
