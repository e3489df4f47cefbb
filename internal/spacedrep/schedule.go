package spacedrep

import (
	"errors"
	"fmt"
	"time"
)

// Ladder is the ordered retention schedule. An entry at stage s is due
// Ladder[s] after its last review. Stage len(Ladder) is graduated.
type Ladder []time.Duration

// DefaultLadder is the expanding interval schedule used when none is configured.
var DefaultLadder = Ladder{
	1 * time.Hour,
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
}

// ErrEmptyLadder is returned when a ladder has no stages.
var ErrEmptyLadder = errors.New("ladder has no stages")

// GraduationStage returns the stage at which an item leaves the schedule.
func (l Ladder) GraduationStage() int {
	return len(l)
}

// IsGraduated reports whether stage is past the last interval.
func (l Ladder) IsGraduated(stage int) bool {
	return stage >= len(l)
}

// Interval returns the wait for stage. ok is false for graduated stages.
func (l Ladder) Interval(stage int) (d time.Duration, ok bool) {
	if stage < 0 || stage >= len(l) {
		return 0, false
	}
	return l[stage], true
}

// Validate checks that the ladder is non-empty and every interval is positive.
func (l Ladder) Validate() error {
	if len(l) == 0 {
		return ErrEmptyLadder
	}
	for i, d := range l {
		if d <= 0 {
			return fmt.Errorf("stage %d: interval %s must be positive", i, d)
		}
	}
	return nil
}

// ParseLadder builds a ladder from duration strings such as "1h" or "72h".
func ParseLadder(specs []string) (Ladder, error) {
	l := make(Ladder, 0, len(specs))
	for i, s := range specs {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		l = append(l, d)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
