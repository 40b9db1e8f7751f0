// Package progression holds the pure scoring functions: mind-type and rank
// classification of an assessment total, the XP level curve, and rank
// progress interpolation. Nothing here touches storage.
package progression

import "math"

// Classify maps an assessment total to its mind-type label.
//
// The thresholds intentionally mirror RankOf's but are kept as an
// independent table; the two label systems are allowed to diverge.
func Classify(total int) MindType {
	switch {
	case total >= 17:
		return MindFocusedArchitect
	case total >= 13:
		return MindStrategicBuilder
	case total >= 10:
		return MindGrowingExplorer
	default:
		return MindUnstableDreamer
	}
}

// RankOf maps an assessment total to its rank tier.
func RankOf(total int) Rank {
	switch {
	case total >= 17:
		return RankArchitect
	case total >= 13:
		return RankBuilder
	case total >= 10:
		return RankExplorer
	default:
		return RankDreamer
	}
}

// NextRank returns the rank above r. Architect is the ceiling and maps to
// itself.
func NextRank(r Rank) Rank {
	switch r {
	case RankDreamer:
		return RankExplorer
	case RankExplorer:
		return RankBuilder
	case RankBuilder:
		return RankArchitect
	default:
		return RankArchitect
	}
}

// XPRequiredForLevel returns the XP cost of advancing from the given level
// to the next one: floor(100 * level^1.4 + 50 * level). The curve is
// strictly increasing in level for level >= 1.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(100*math.Pow(float64(level), 1.4) + float64(level)*50))
}

// LevelInfo describes a position on the level curve.
type LevelInfo struct {
	Level             int
	XPIntoLevel       int
	XPRequiredForNext int
}

// LevelFromXP converts cumulative XP into a level plus progress within that
// level. Levels start at 1; the loop terminates for any finite input because
// each iteration removes a strictly positive, strictly growing amount.
func LevelFromXP(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remainder := totalXP
	for remainder >= XPRequiredForLevel(level) {
		remainder -= XPRequiredForLevel(level)
		level++
	}

	return LevelInfo{
		Level:             level,
		XPIntoLevel:       remainder,
		XPRequiredForNext: XPRequiredForLevel(level),
	}
}

// ProgressToNextRankPercent linearly interpolates total within its rank's
// score band, clamped to [0,100]. The top band always reports 100.
func ProgressToNextRankPercent(total int) int {
	rank := RankOf(total)
	if rank == RankArchitect {
		return 100
	}

	band := rankBands[rank]
	span := band.High - band.Low + 1
	pct := (total - band.Low + 1) * 100 / span
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
