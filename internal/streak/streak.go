// Package streak tracks consecutive-day activity and applies XP decay for
// missed days. All date math is done on local calendar days, never raw
// timestamp subtraction, so behavior is stable across DST transitions.
package streak

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-day format used in the store.
const DateLayout = "2006-01-02"

// DefaultPerDayPenalty is the XP deducted for each fully missed day.
const DefaultPerDayPenalty = 15

// Result reports the outcome of advancing the streak to a new day.
type Result struct {
	Streak     int
	XP         int
	DaysMissed int
	Penalty    int
	Continued  bool
	Reset      bool
}

// Tracker advances streak state. PerDayPenalty is the XP cost per missed
// day; zero disables decay.
type Tracker struct {
	PerDayPenalty int
}

func New(perDayPenalty int) *Tracker {
	return &Tracker{PerDayPenalty: perDayPenalty}
}

// DayDelta returns today - lastActive in whole local calendar days. Both
// strings must be in DateLayout. An unparseable lastActive is reported as
// an error so the caller can treat it as "no prior activity".
func DayDelta(lastActive, today string) (int, error) {
	last, err := time.ParseInLocation(DateLayout, lastActive, time.Local)
	if err != nil {
		return 0, fmt.Errorf("parse last active date %q: %w", lastActive, err)
	}
	cur, err := time.ParseInLocation(DateLayout, today, time.Local)
	if err != nil {
		return 0, fmt.Errorf("parse current date %q: %w", today, err)
	}

	// Count midnights crossed rather than dividing a duration, so a DST
	// day of 23 or 25 hours still counts as exactly one day.
	days := 0
	for last.Before(cur) {
		last = last.AddDate(0, 0, 1)
		days++
	}
	for cur.Before(last) {
		cur = cur.AddDate(0, 0, 1)
		days--
	}
	return days, nil
}

// Today formats a time as its local calendar day.
func Today(now time.Time) string {
	return now.In(time.Local).Format(DateLayout)
}

// Advance applies the streak state machine for a submission happening on
// today's date:
//
//	no prior date  -> streak 1
//	delta == 0     -> unchanged (same-day re-entry)
//	delta == 1     -> streak + 1
//	delta  > 1     -> streak 1, XP -= delta * PerDayPenalty (floored at 0)
//	delta  < 0     -> streak 1 (clock skew, no continuity, no penalty)
//
// Callers persist the returned streak/XP and set lastActiveDate to today
// unconditionally.
func (t *Tracker) Advance(lastActive, today string, curStreak, curXP int) Result {
	res := Result{Streak: curStreak, XP: curXP}

	if lastActive == "" {
		res.Streak = 1
		res.Reset = true
		return res
	}

	delta, err := DayDelta(lastActive, today)
	if err != nil {
		res.Streak = 1
		res.Reset = true
		return res
	}

	switch {
	case delta == 0:
		// Same-day re-entry is a no-op.
	case delta == 1:
		res.Streak = curStreak + 1
		res.Continued = true
	case delta > 1:
		res.Streak = 1
		res.Reset = true
		res.DaysMissed = delta
		res.Penalty = delta * t.PerDayPenalty
		res.XP = curXP - res.Penalty
		if res.XP < 0 {
			res.XP = 0
		}
	default:
		// Negative delta means the clock moved backwards; treat as a
		// broken streak rather than crashing or going negative.
		res.Streak = 1
		res.Reset = true
	}

	return res
}
