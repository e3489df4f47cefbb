package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/wordnest/internal/spacedrep"
	"github.com/abhisek/wordnest/internal/store"
)

// DefaultProfile is the snapshot key used when none is configured.
const DefaultProfile = "default"

// Config configures a Service. Zero values fall back to the defaults noted
// on each field.
type Config struct {
	Profile         string           // Default: DefaultProfile.
	Ladder          spacedrep.Ladder // Default: spacedrep.DefaultLadder.
	DailyGoal       int              // Default: DefaultDailyGoal.
	DefaultCategory string
	Location        *time.Location // Calendar used for daily rollover. Default: time.Local.
	Keep            int            // Snapshots retained per profile; 0 keeps all.

	Now    func() time.Time // Default: time.Now.
	Logger *slog.Logger     // Default: slog.Default().

	// OnStoreError is called when the store cannot be read on Load or a
	// snapshot cannot be written. The in-memory transition has already been
	// applied when it runs.
	OnStoreError func(error)
}

// ErrStoreUnavailable is reported for writes skipped because the saved
// progress could not be read. Writing would shadow it with defaults.
var ErrStoreUnavailable = errors.New("progress store unavailable")

// Service owns the current learner State and persists it after every change.
type Service struct {
	mu    sync.Mutex
	repo  store.SnapshotRepo
	cfg   Config
	sched *spacedrep.Scheduler
	state State

	// unavailable is set when Load could not read the store.
	unavailable bool
}

// NewService creates a Service backed by repo. The service starts from
// default state; call Load to restore saved progress.
func NewService(repo store.SnapshotRepo, cfg Config) *Service {
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if len(cfg.Ladder) == 0 {
		cfg.Ladder = spacedrep.DefaultLadder
	}
	if cfg.DailyGoal <= 0 {
		cfg.DailyGoal = DefaultDailyGoal
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Service{
		repo:  repo,
		cfg:   cfg,
		sched: spacedrep.NewScheduler(cfg.Ladder),
	}
	s.state = s.defaults(cfg.Now())
	return s
}

func (s *Service) defaults(now time.Time) State {
	return Defaults(now, s.cfg.DefaultCategory, s.cfg.DailyGoal)
}

// Ladder returns the interval ladder in use.
func (s *Service) Ladder() spacedrep.Ladder {
	return s.cfg.Ladder
}

// Load restores the latest saved state for the configured profile and
// applies the daily rollover if the last activity was on an earlier day.
// Missing or corrupt snapshots yield default state. A rollover is written
// back immediately. If the store cannot be read, Load reports the error to
// OnStoreError, continues from default state and skips writes until a later
// Load succeeds.
func (s *Service) Load(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.Now()
	log := s.cfg.Logger.With("profile", s.cfg.Profile)

	snap, err := s.repo.Latest(ctx, s.cfg.Profile)
	switch {
	case errors.Is(err, store.ErrSnapshotCorrupt):
		log.Warn("discarding corrupt snapshot, starting fresh", "error", err)
		s.unavailable = false
		s.state = s.defaults(now)
		return s.state, nil
	case err != nil:
		err = fmt.Errorf("load progress: %w", err)
		log.Warn("progress store unreadable, continuing without saving", "error", err)
		s.reportStoreError(err)
		s.state = s.defaults(now)
		s.unavailable = true
		return s.state, nil
	case snap == nil:
		log.Debug("no saved progress, starting fresh")
		s.unavailable = false
		s.state = s.defaults(now)
		return s.state, nil
	}

	s.unavailable = false
	st := FromSnapshot(snap.Data, s.defaults(now))
	st, rolled := Rollover(st, now, s.cfg.Location)
	log.Debug("progress loaded",
		"sequence", snap.Sequence,
		"items", st.Ledger.Len(),
		"learned_today", st.Stats.ItemsLearnedToday)

	s.state = st
	if rolled {
		log.Info("new day, daily counter reset", "last_active", snap.Data.Stats.LastActive)
		s.saveOrReport(ctx, "rollover")
	}
	return s.state, nil
}

// State returns the current state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Save makes st the current state and writes it to the store.
func (s *Service) Save(ctx context.Context, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	return s.persist(ctx)
}

// Due returns the items due for review now, most overdue first.
func (s *Service) Due() []spacedrep.ReviewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Due(s.state.Ledger, s.cfg.Now())
}

// Queue is the review queue at a single instant.
type Queue struct {
	Now     time.Time
	Due     []spacedrep.ReviewEntry
	Next    time.Time // Earliest upcoming due time; zero when HasNext is false.
	HasNext bool
}

// Queue returns the due items and the next due time, both computed against
// one reading of the clock.
func (s *Service) Queue() Queue {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := Queue{Now: s.cfg.Now()}
	q.Due = s.sched.Due(s.state.Ledger, q.Now)
	q.Next, q.HasNext = spacedrep.NextDue(s.state.Ledger, s.cfg.Ladder, q.Now)
	return q
}

// NextDue returns when the next pending review becomes due.
func (s *Service) NextDue() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return spacedrep.NextDue(s.state.Ledger, s.cfg.Ladder, s.cfg.Now())
}

// Learn records that itemID was taught.
func (s *Service) Learn(ctx context.Context, itemID string) State {
	return s.apply(ctx, "learn", func(st State, now time.Time) State {
		return RecordLearned(st, itemID, now)
	})
}

// Review records a review outcome for itemID.
func (s *Service) Review(ctx context.Context, itemID string, success bool) State {
	return s.apply(ctx, "review", func(st State, now time.Time) State {
		return ApplyReview(st, s.cfg.Ladder, itemID, success, now)
	})
}

// AddStars credits a reward to the learner.
func (s *Service) AddStars(ctx context.Context, n int) State {
	return s.apply(ctx, "reward", func(st State, _ time.Time) State {
		return AddStars(st, n)
	})
}

// SetCategory changes the current category.
func (s *Service) SetCategory(ctx context.Context, name string) State {
	return s.apply(ctx, "category", func(st State, _ time.Time) State {
		return SetCategory(st, name)
	})
}

// RecordMiss logs a wrong answer for itemID. The log entry snapshots the
// item's review state at the time of the miss.
func (s *Service) RecordMiss(ctx context.Context, itemID string) State {
	return s.apply(ctx, "miss", func(st State, now time.Time) State {
		e, ok := st.Ledger.Get(itemID)
		if !ok {
			e = spacedrep.ReviewEntry{ItemID: itemID, LastReviewTime: now}
		}
		return RecordMiss(st, e)
	})
}

// Reset deletes all saved progress for the profile and returns to defaults.
func (s *Service) Reset(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.cfg.Profile); err != nil {
		return s.state, fmt.Errorf("reset progress: %w", err)
	}
	s.unavailable = false
	s.state = s.defaults(s.cfg.Now())
	return s.state, nil
}

// apply runs a transition and writes the result through. A failed write is
// reported to OnStoreError; the new state is kept either way.
func (s *Service) apply(ctx context.Context, event string, fn func(State, time.Time) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fn(s.state, s.cfg.Now())
	s.saveOrReport(ctx, event)
	return s.state
}

// saveOrReport writes the current state. Callers hold s.mu.
func (s *Service) saveOrReport(ctx context.Context, event string) {
	if err := s.persist(ctx); err != nil {
		s.cfg.Logger.Warn("progress not saved", "event", event, "error", err)
		s.reportStoreError(err)
	}
}

func (s *Service) reportStoreError(err error) {
	if s.cfg.OnStoreError != nil {
		s.cfg.OnStoreError(err)
	}
}

func (s *Service) persist(ctx context.Context) error {
	if s.unavailable {
		return ErrStoreUnavailable
	}
	snap := &store.Snapshot{
		Profile:   s.cfg.Profile,
		Timestamp: s.cfg.Now(),
		Data:      SnapshotData(s.state),
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if s.cfg.Keep > 0 {
		if err := s.repo.Prune(ctx, s.cfg.Profile, s.cfg.Keep); err != nil {
			return fmt.Errorf("prune progress: %w", err)
		}
	}
	return nil
}
