package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"neuroforge/internal/achievement"
	"neuroforge/internal/config"
	"neuroforge/internal/notify"
	"neuroforge/internal/progression"
	"neuroforge/internal/store"
	"neuroforge/internal/streak"
)

// Service wires the store, streak tracker, and achievement evaluator into
// the operations the presentation layer calls. Constructed once at startup,
// one instance per process.
type Service struct {
	store   *store.Store
	tracker *streak.Tracker
	eval    *achievement.Evaluator
	queue   *notify.Queue
	cfg     config.Config
	now     func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithNow replaces the clock, for tests and for replaying sessions.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New builds a Service over the given store and notification queue.
func New(st *store.Store, queue *notify.Queue, cfg config.Config, opts ...Option) *Service {
	s := &Service{
		store:   st,
		tracker: streak.New(cfg.PerDayPenalty),
		eval:    achievement.NewEvaluator(st, queue),
		queue:   queue,
		cfg:     cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluator exposes the achievement evaluator for listing surfaces.
func (s *Service) Evaluator() *achievement.Evaluator {
	return s.eval
}

// Submit records one questionnaire submission. Decay for missed days is
// applied before the submission's own XP gain. A resubmission on the same
// calendar day replaces today's entry instead of appending.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Outcome, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	today := streak.Today(now)

	lastActive, err := s.store.LastActiveDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("read last active date: %w", err)
	}
	curStreak, err := s.store.Streak(ctx)
	if err != nil {
		return nil, fmt.Errorf("read streak: %w", err)
	}
	curXP, err := s.store.XP(ctx)
	if err != nil {
		return nil, fmt.Errorf("read xp: %w", err)
	}

	levelBefore := progression.LevelFromXP(curXP)

	res := s.tracker.Advance(lastActive, today, curStreak, curXP)
	if res.Penalty > 0 {
		s.queue.Enqueue(notify.Notification{
			Kind:  notify.KindDecay,
			Title: "Streak broken",
			Body:  fmt.Sprintf("%d missed days cost %d XP", res.DaysMissed, res.Penalty),
		})
	}

	total := sub.Total()
	award := s.cfg.BaseAward + s.cfg.PerPointAward*(total-progression.MinTotal)
	xp := res.XP + award

	rec := store.Record{
		ID:          uuid.NewString(),
		Date:        today,
		Focus:       sub.Focus,
		Discipline:  sub.Discipline,
		Execution:   sub.Execution,
		Consistency: sub.Consistency,
		Total:       total,
		MindType:    string(progression.Classify(total)),
		Rank:        string(progression.RankOf(total)),
	}

	history, err := s.store.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	replaced := false
	if n := len(history); n > 0 && history[n-1].Date == today {
		history[n-1] = rec
		replaced = true
	} else {
		history = append(history, rec)
	}

	if err := s.store.SetHistory(ctx, history); err != nil {
		return nil, fmt.Errorf("write history: %w", err)
	}
	if err := s.store.SetXP(ctx, xp); err != nil {
		return nil, fmt.Errorf("write xp: %w", err)
	}
	if err := s.store.SetStreak(ctx, res.Streak); err != nil {
		return nil, fmt.Errorf("write streak: %w", err)
	}
	if err := s.store.SetLastActiveDate(ctx, today); err != nil {
		return nil, fmt.Errorf("write last active date: %w", err)
	}

	levelAfter := progression.LevelFromXP(xp)
	if levelAfter.Level > levelBefore.Level {
		s.queue.Enqueue(notify.Notification{
			Kind:  notify.KindLevelUp,
			Title: "Level up",
			Body:  fmt.Sprintf("You reached level %d", levelAfter.Level),
		})
	}

	outcome := &Outcome{
		Record:     rec,
		Replaced:   replaced,
		XPAwarded:  award,
		Penalty:    res.Penalty,
		DaysMissed: res.DaysMissed,
		Streak:     res.Streak,
		XP:         xp,
		Level:      levelAfter,
		LeveledUp:  levelAfter.Level > levelBefore.Level,
	}

	snap := achievement.Snapshot{
		HistoryCount: len(history),
		Streak:       res.Streak,
		XP:           xp,
		Level:        levelAfter.Level,
		Rank:         progression.Rank(rec.Rank),
	}
	unlocked, err := s.eval.EvaluateSnapshot(ctx, snap)
	if err != nil {
		return outcome, fmt.Errorf("evaluate achievements: %w", err)
	}
	timed, err := s.eval.FireTrigger(ctx, achievement.TimeOfDayTrigger(now.Hour()))
	if err != nil {
		return outcome, fmt.Errorf("fire time-of-day trigger: %w", err)
	}
	for _, r := range append(unlocked, timed...) {
		outcome.Unlocked = append(outcome.Unlocked, r.ID)
	}

	return outcome, nil
}

// Overview assembles the read-only progression summary.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	xp, err := s.store.XP(ctx)
	if err != nil {
		return nil, fmt.Errorf("read xp: %w", err)
	}
	streakCount, err := s.store.Streak(ctx)
	if err != nil {
		return nil, fmt.Errorf("read streak: %w", err)
	}
	lastActive, err := s.store.LastActiveDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("read last active date: %w", err)
	}
	history, err := s.store.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	ov := &Overview{
		XP:             xp,
		Level:          progression.LevelFromXP(xp),
		Streak:         streakCount,
		LastActiveDate: lastActive,
		HistoryCount:   len(history),
	}
	if len(history) > 0 {
		latest := history[len(history)-1]
		ov.Latest = &latest
		ov.RankProgress = progression.ProgressToNextRankPercent(latest.Total)
	}
	return ov, nil
}

// History returns the full record sequence, oldest first.
func (s *Service) History(ctx context.Context) ([]store.Record, error) {
	return s.store.History(ctx)
}

// MarkViewed remembers the history index the user last looked at.
func (s *Service) MarkViewed(ctx context.Context, idx int) error {
	return s.store.SetLastViewedIndex(ctx, idx)
}

// LastViewed returns the remembered history index, -1 when none.
func (s *Service) LastViewed(ctx context.Context) (int, error) {
	return s.store.LastViewedIndex(ctx)
}

// Reset irreversibly clears all persisted state. Confirmation is the
// caller's responsibility.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.ResetAll(ctx)
}
