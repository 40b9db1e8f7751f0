package progression

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		total int
		want  MindType
	}{
		{4, MindUnstableDreamer},
		{9, MindUnstableDreamer},
		{10, MindGrowingExplorer},
		{12, MindGrowingExplorer},
		{13, MindStrategicBuilder},
		{16, MindStrategicBuilder},
		{17, MindFocusedArchitect},
		{20, MindFocusedArchitect},
	}

	for _, tt := range tests {
		if got := Classify(tt.total); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestRankOf(t *testing.T) {
	tests := []struct {
		total int
		want  Rank
	}{
		{4, RankDreamer},
		{9, RankDreamer},
		{10, RankExplorer},
		{12, RankExplorer},
		{13, RankBuilder},
		{16, RankBuilder},
		{17, RankArchitect},
		{20, RankArchitect},
	}

	for _, tt := range tests {
		if got := RankOf(tt.total); got != tt.want {
			t.Errorf("RankOf(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

// RankOf must be monotonically non-decreasing across the whole valid range
// and only ever produce the four known tiers.
func TestRankOfMonotonic(t *testing.T) {
	order := map[Rank]int{
		RankDreamer:   0,
		RankExplorer:  1,
		RankBuilder:   2,
		RankArchitect: 3,
	}

	prev := -1
	for total := MinTotal; total <= MaxTotal; total++ {
		r := RankOf(total)
		pos, known := order[r]
		if !known {
			t.Fatalf("RankOf(%d) = %q, not a known rank", total, r)
		}
		if pos < prev {
			t.Fatalf("RankOf(%d) = %q, rank decreased", total, r)
		}
		prev = pos
	}
}

func TestNextRank(t *testing.T) {
	tests := []struct {
		in   Rank
		want Rank
	}{
		{RankDreamer, RankExplorer},
		{RankExplorer, RankBuilder},
		{RankBuilder, RankArchitect},
		{RankArchitect, RankArchitect},
	}

	for _, tt := range tests {
		if got := NextRank(tt.in); got != tt.want {
			t.Errorf("NextRank(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestXPRequiredForLevelIncreasing(t *testing.T) {
	prev := 0
	for level := 1; level <= 50; level++ {
		req := XPRequiredForLevel(level)
		if req <= prev {
			t.Fatalf("XPRequiredForLevel(%d) = %d, not above previous %d", level, req, prev)
		}
		prev = req
	}
}

func TestXPRequiredForLevelValues(t *testing.T) {
	// floor(100 * level^1.4 + level*50)
	tests := []struct {
		level int
		want  int
	}{
		{1, 150},
		{2, 363},
	}

	for _, tt := range tests {
		if got := XPRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("XPRequiredForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromXPZero(t *testing.T) {
	info := LevelFromXP(0)
	if info.Level != 1 {
		t.Errorf("Level = %d, want 1", info.Level)
	}
	if info.XPIntoLevel != 0 {
		t.Errorf("XPIntoLevel = %d, want 0", info.XPIntoLevel)
	}
	if info.XPRequiredForNext != XPRequiredForLevel(1) {
		t.Errorf("XPRequiredForNext = %d, want %d", info.XPRequiredForNext, XPRequiredForLevel(1))
	}
}

func TestLevelFromXP(t *testing.T) {
	l1 := XPRequiredForLevel(1)

	tests := []struct {
		xp        int
		wantLevel int
		wantInto  int
	}{
		{0, 1, 0},
		{l1 - 1, 1, l1 - 1},
		{l1, 2, 0},
		{l1 + 10, 2, 10},
		{l1 + XPRequiredForLevel(2), 3, 0},
		{-5, 1, 0},
	}

	for _, tt := range tests {
		info := LevelFromXP(tt.xp)
		if info.Level != tt.wantLevel || info.XPIntoLevel != tt.wantInto {
			t.Errorf("LevelFromXP(%d) = {level:%d into:%d}, want {level:%d into:%d}",
				tt.xp, info.Level, info.XPIntoLevel, tt.wantLevel, tt.wantInto)
		}
	}
}

// Every level reported must be >= 1 and progress must stay below the next
// requirement, across a broad sweep of inputs.
func TestLevelFromXPSweep(t *testing.T) {
	for xp := 0; xp <= 100_000; xp += 137 {
		info := LevelFromXP(xp)
		if info.Level < 1 {
			t.Fatalf("LevelFromXP(%d).Level = %d", xp, info.Level)
		}
		if info.XPIntoLevel < 0 || info.XPIntoLevel >= info.XPRequiredForNext {
			t.Fatalf("LevelFromXP(%d) progress %d outside [0,%d)", xp, info.XPIntoLevel, info.XPRequiredForNext)
		}
	}
}

func TestProgressToNextRankPercent(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{4, 16},
		{9, 100},
		{10, 33},
		{12, 100},
		{13, 25},
		{16, 100},
		{17, 100},
		{20, 100},
	}

	for _, tt := range tests {
		if got := ProgressToNextRankPercent(tt.total); got != tt.want {
			t.Errorf("ProgressToNextRankPercent(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestProgressToNextRankPercentBounds(t *testing.T) {
	for total := MinTotal; total <= MaxTotal; total++ {
		pct := ProgressToNextRankPercent(total)
		if pct < 0 || pct > 100 {
			t.Fatalf("ProgressToNextRankPercent(%d) = %d, outside [0,100]", total, pct)
		}
	}
}
