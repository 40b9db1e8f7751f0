package achievement

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"neuroforge/internal/notify"
	"neuroforge/internal/progression"
	"neuroforge/internal/store"
)

func testEvaluator(t *testing.T) (*Evaluator, *notify.Queue) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	q := notify.NewQueue()
	return NewEvaluator(st, q), q
}

func TestEvaluateSnapshotUnlocks(t *testing.T) {
	e, q := testEvaluator(t)
	ctx := context.Background()

	snap := Snapshot{
		HistoryCount: 1,
		Streak:       3,
		XP:           100,
		Level:        1,
		Rank:         progression.RankExplorer,
	}

	unlocked, err := e.EvaluateSnapshot(ctx, snap)
	if err != nil {
		t.Fatalf("EvaluateSnapshot: %v", err)
	}

	got := make(map[string]bool)
	for _, r := range unlocked {
		got[r.ID] = true
	}
	if !got["first_assessment"] || !got["streak_3"] {
		t.Errorf("unlocked = %v, want first_assessment and streak_3", got)
	}
	if got["streak_7"] || got["rank_architect"] {
		t.Errorf("unlocked rules whose predicates are false: %v", got)
	}

	if q.Len() != len(unlocked) {
		t.Errorf("queue length = %d, want one notification per unlock (%d)", q.Len(), len(unlocked))
	}
}

func TestEvaluateSnapshotIdempotent(t *testing.T) {
	e, q := testEvaluator(t)
	ctx := context.Background()

	snap := Snapshot{HistoryCount: 1, Rank: progression.RankDreamer, Level: 1}

	first, err := e.EvaluateSnapshot(ctx, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 || first[0].ID != "first_assessment" {
		t.Fatalf("first pass unlocked %v, want [first_assessment]", first)
	}
	q.Drain()

	second, err := e.EvaluateSnapshot(ctx, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Errorf("second pass unlocked %v, want nothing", second)
	}
	if q.Len() != 0 {
		t.Errorf("second pass enqueued %d notifications, want 0", q.Len())
	}
}

func TestFireTrigger(t *testing.T) {
	e, q := testEvaluator(t)
	ctx := context.Background()

	unlocked, err := e.FireTrigger(ctx, TriggerNightOwl)
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "night_owl" {
		t.Fatalf("FireTrigger = %v, want [night_owl]", unlocked)
	}
	if q.Len() != 1 {
		t.Errorf("queue length = %d, want 1", q.Len())
	}
	q.Drain()

	// Re-firing is a no-op and never re-notifies.
	again, err := e.FireTrigger(ctx, TriggerNightOwl)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 || q.Len() != 0 {
		t.Errorf("re-fire unlocked %v with %d notifications, want none", again, q.Len())
	}
}

func TestFireTriggerUnknown(t *testing.T) {
	e, _ := testEvaluator(t)

	unlocked, err := e.FireTrigger(context.Background(), "no-such-trigger")
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked) != 0 {
		t.Errorf("unknown trigger unlocked %v", unlocked)
	}
}

func TestStatuses(t *testing.T) {
	e, _ := testEvaluator(t)
	ctx := context.Background()

	if _, err := e.FireTrigger(ctx, TriggerEarlyBird); err != nil {
		t.Fatal(err)
	}

	statuses, err := e.Statuses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != len(Rules()) {
		t.Fatalf("Statuses covers %d rules, want %d", len(statuses), len(Rules()))
	}

	for _, st := range statuses {
		want := st.Rule.ID == "early_bird"
		if st.Unlocked != want {
			t.Errorf("rule %s unlocked = %v, want %v", st.Rule.ID, st.Unlocked, want)
		}
	}
}
