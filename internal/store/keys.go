package store

// Persisted state keys. The value column holds JSON for structured entries
// and plain strings for scalars.
const (
	KeyHistory         = "history"
	KeyAchievements    = "achievements"
	KeyXP              = "xp"
	KeyStreak          = "streak"
	KeyLastActiveDate  = "last_active_date"
	KeyLastViewedIndex = "last_viewed_index"
)

// allKeys is the reset surface; ResetAll clears exactly these.
var allKeys = []string{
	KeyHistory,
	KeyAchievements,
	KeyXP,
	KeyStreak,
	KeyLastActiveDate,
	KeyLastViewedIndex,
}
