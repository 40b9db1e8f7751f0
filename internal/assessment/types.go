// Package assessment orchestrates a questionnaire submission: validation,
// streak advancement with decay, XP award, history bookkeeping, and
// achievement evaluation. It is the only writer of progression state.
package assessment

import (
	"errors"
	"fmt"

	"neuroforge/internal/progression"
	"neuroforge/internal/store"
)

// Submission is the raw questionnaire payload from the presentation layer.
type Submission struct {
	Focus       int
	Discipline  int
	Execution   int
	Consistency int
}

// ErrInvalidRating is returned when a category rating is outside 1-5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Validate checks every category rating.
func (s Submission) Validate() error {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"focus", s.Focus},
		{"discipline", s.Discipline},
		{"execution", s.Execution},
		{"consistency", s.Consistency},
	} {
		if c.value < 1 || c.value > 5 {
			return fmt.Errorf("%s = %d: %w", c.name, c.value, ErrInvalidRating)
		}
	}
	return nil
}

// Total sums the four category ratings.
func (s Submission) Total() int {
	return s.Focus + s.Discipline + s.Execution + s.Consistency
}

// Outcome is everything a submission produced, for the presentation layer
// to render.
type Outcome struct {
	Record     store.Record
	Replaced   bool // same-day resubmission replaced today's entry
	XPAwarded  int
	Penalty    int
	DaysMissed int
	Streak     int
	XP         int
	Level      progression.LevelInfo
	LeveledUp  bool
	Unlocked   []string // newly unlocked achievement ids, in unlock order
}

// Overview is the read-only progression summary exposed to stats surfaces.
type Overview struct {
	XP             int
	Level          progression.LevelInfo
	Streak         int
	LastActiveDate string
	HistoryCount   int
	Latest         *store.Record
	RankProgress   int // percent through the current rank's score band
}
