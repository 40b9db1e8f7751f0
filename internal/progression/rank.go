package progression

// Rank is the coarse four-tier classification of an assessment total.
type Rank string

const (
	RankDreamer   Rank = "Dreamer"
	RankExplorer  Rank = "Explorer"
	RankBuilder   Rank = "Builder"
	RankArchitect Rank = "Architect"
)

func (r Rank) IsValid() bool {
	switch r {
	case RankDreamer, RankExplorer, RankBuilder, RankArchitect:
		return true
	default:
		return false
	}
}

// MindType is the descriptive label derived from the same total score.
// It is a parallel label system to Rank, not derived from it.
type MindType string

const (
	MindUnstableDreamer  MindType = "Unstable Dreamer"
	MindGrowingExplorer  MindType = "Growing Explorer"
	MindStrategicBuilder MindType = "Strategic Builder"
	MindFocusedArchitect MindType = "Focused Architect"
)

// Score band boundaries per rank. Each rank covers [Low, High] inclusive.
type scoreBand struct {
	Low  int
	High int
}

var rankBands = map[Rank]scoreBand{
	RankDreamer:   {MinTotal, 9},
	RankExplorer:  {10, 12},
	RankBuilder:   {13, 16},
	RankArchitect: {17, MaxTotal},
}

// MinTotal and MaxTotal bound the assessment total (four categories, 1-5 each).
const (
	MinTotal = 4
	MaxTotal = 20
)
