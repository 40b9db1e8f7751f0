// Package achievement evaluates the static rule table against derived
// state and records unlocks. A rule is either snapshot-evaluated (carries a
// predicate) or event-triggered (unlocked by a named external trigger);
// the two kinds go through separate paths.
package achievement

import "neuroforge/internal/progression"

// Kind separates the two rule variants.
type Kind int

const (
	KindSnapshot Kind = iota
	KindEvent
)

// Snapshot is the derived state a predicate sees.
type Snapshot struct {
	HistoryCount int
	Streak       int
	XP           int
	Level        int
	Rank         progression.Rank
}

// Rule is one unlockable achievement. Predicate is set only for
// KindSnapshot rules; Trigger only for KindEvent rules.
type Rule struct {
	ID        string
	Title     string
	Icon      string
	Kind      Kind
	Predicate func(Snapshot) bool
	Trigger   string
}

// Named event triggers.
const (
	TriggerNightOwl  = "night-owl"
	TriggerEarlyBird = "early-bird"
)

// Rules is the static achievement table. Never mutated at runtime; the
// persisted unlock set is always a subset of these ids.
func Rules() []Rule {
	return []Rule{
		{
			ID: "first_assessment", Title: "First Steps", Icon: "🌱",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.HistoryCount >= 1 },
		},
		{
			ID: "self_aware", Title: "Self Aware", Icon: "🔍",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.HistoryCount >= 10 },
		},
		{
			ID: "streak_3", Title: "Warming Up", Icon: "🔥",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Streak >= 3 },
		},
		{
			ID: "streak_7", Title: "Week of Will", Icon: "⚡",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Streak >= 7 },
		},
		{
			ID: "streak_30", Title: "Unbreakable", Icon: "💎",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Streak >= 30 },
		},
		{
			ID: "level_5", Title: "Climbing", Icon: "⭐",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Level >= 5 },
		},
		{
			ID: "level_10", Title: "Ascendant", Icon: "🌟",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Level >= 10 },
		},
		{
			ID: "xp_1000", Title: "Forged Mind", Icon: "🛠",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.XP >= 1000 },
		},
		{
			ID: "rank_architect", Title: "The Architect", Icon: "🏛",
			Kind:      KindSnapshot,
			Predicate: func(s Snapshot) bool { return s.Rank == progression.RankArchitect },
		},
		{
			ID: "night_owl", Title: "Night Owl", Icon: "🦉",
			Kind: KindEvent, Trigger: TriggerNightOwl,
		},
		{
			ID: "early_bird", Title: "Early Bird", Icon: "🐦",
			Kind: KindEvent, Trigger: TriggerEarlyBird,
		},
	}
}

// RuleByID looks a rule up in the static table.
func RuleByID(id string) (Rule, bool) {
	for _, r := range Rules() {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// TimeOfDayTrigger maps a local hour to an event trigger, or "" when the
// hour unlocks nothing. Hours 0-4 are night-owl territory, 5-8 early-bird.
func TimeOfDayTrigger(hour int) string {
	switch {
	case hour >= 0 && hour <= 4:
		return TriggerNightOwl
	case hour >= 5 && hour <= 8:
		return TriggerEarlyBird
	default:
		return ""
	}
}
