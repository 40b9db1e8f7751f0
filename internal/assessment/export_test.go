package assessment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	_, err := svc.Submit(ctx, allFives())
	require.NoError(t, err)
	clock.advanceDays(1)
	_, err = svc.Submit(ctx, allOnes())
	require.NoError(t, err)

	exported, err := svc.ExportJSON(ctx)
	require.NoError(t, err)

	before, err := svc.Export(ctx)
	require.NoError(t, err)

	// Wipe, then restore from the export.
	require.NoError(t, svc.Reset(ctx))

	report, err := svc.Import(ctx, exported)
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"history", "achievements", "xp", "streak", "lastActiveDate"},
		report.Applied)
	require.Empty(t, report.Skipped)

	after, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestImportRejectsNonObject(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)

	_, err := svc.Import(context.Background(), []byte(`"just a string"`))
	require.Error(t, err)
}

func TestImportSkipsMalformedSections(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	_, err := svc.Submit(ctx, allFives())
	require.NoError(t, err)

	xpBefore, err := svc.Overview(ctx)
	require.NoError(t, err)

	doc := `{"xp": "not a number", "streak": 9}`
	report, err := svc.Import(ctx, []byte(doc))
	require.NoError(t, err)

	require.Contains(t, report.Applied, "streak")
	require.Contains(t, report.Skipped, "xp")
	require.Contains(t, report.Skipped, "history")

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, ov.Streak, "valid section must be applied")
	require.Equal(t, xpBefore.XP, ov.XP, "invalid section must leave existing state untouched")
	require.Equal(t, 1, ov.HistoryCount, "absent section must leave existing state untouched")
}

func TestImportNormalizesDerivedFields(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	// Hand-edited record with an inconsistent total and labels.
	doc := `{"history": [{
		"date": "2025-03-01",
		"focus": 5, "discipline": 5, "execution": 5, "consistency": 5,
		"total": 4, "mindType": "Unstable Dreamer", "rank": "Dreamer"
	}]}`

	report, err := svc.Import(ctx, []byte(doc))
	require.NoError(t, err)
	require.Contains(t, report.Applied, "history")

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 20, history[0].Total)
	require.Equal(t, "Focused Architect", history[0].MindType)
	require.Equal(t, "Architect", history[0].Rank)
}

func TestImportFiltersUnknownAchievements(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	doc := `{"achievements": ["first_assessment", "made_up_badge"]}`
	report, err := svc.Import(ctx, []byte(doc))
	require.NoError(t, err)
	require.Contains(t, report.Applied, "achievements")

	exported, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"first_assessment"}, exported.Achievements)
}

func TestImportRejectsOutOfRangeScores(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	doc := `{"history": [{
		"date": "2025-03-01",
		"focus": 7, "discipline": 5, "execution": 5, "consistency": 5
	}]}`

	report, err := svc.Import(ctx, []byte(doc))
	require.NoError(t, err)
	require.Contains(t, report.Skipped, "history")

	history, err := svc.History(ctx)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestExportJSONShape(t *testing.T) {
	clock := newTestClock("2025-03-10")
	svc, _ := testService(t, clock)
	ctx := context.Background()

	_, err := svc.Submit(ctx, allFives())
	require.NoError(t, err)

	raw, err := svc.ExportJSON(ctx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"history", "achievements", "xp", "streak", "lastActiveDate"} {
		require.Contains(t, decoded, key)
	}
}
