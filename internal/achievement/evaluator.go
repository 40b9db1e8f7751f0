package achievement

import (
	"context"
	"fmt"

	"neuroforge/internal/notify"
	"neuroforge/internal/store"
)

// Evaluator checks rules against state and persists unlocks. Unlocking is
// idempotent; a rule that is already in the unlock set never re-notifies.
type Evaluator struct {
	store *store.Store
	queue *notify.Queue
}

func NewEvaluator(st *store.Store, queue *notify.Queue) *Evaluator {
	return &Evaluator{store: st, queue: queue}
}

// EvaluateSnapshot runs every snapshot-kind rule against snap and unlocks
// the ones whose predicate holds. Returns the rules newly unlocked by this
// call, in table order.
func (e *Evaluator) EvaluateSnapshot(ctx context.Context, snap Snapshot) ([]Rule, error) {
	var unlocked []Rule
	for _, rule := range Rules() {
		if rule.Kind != KindSnapshot {
			continue
		}
		if !rule.Predicate(snap) {
			continue
		}
		added, err := e.unlock(ctx, rule)
		if err != nil {
			return unlocked, err
		}
		if added {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked, nil
}

// FireTrigger unlocks the event-kind rules bound to the named trigger.
// Unknown trigger names unlock nothing.
func (e *Evaluator) FireTrigger(ctx context.Context, trigger string) ([]Rule, error) {
	if trigger == "" {
		return nil, nil
	}

	var unlocked []Rule
	for _, rule := range Rules() {
		if rule.Kind != KindEvent || rule.Trigger != trigger {
			continue
		}
		added, err := e.unlock(ctx, rule)
		if err != nil {
			return unlocked, err
		}
		if added {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked, nil
}

// unlock persists the id and enqueues the one-time notification on first
// unlock only.
func (e *Evaluator) unlock(ctx context.Context, rule Rule) (bool, error) {
	added, err := e.store.UnlockAchievement(ctx, rule.ID)
	if err != nil {
		return false, fmt.Errorf("unlock %s: %w", rule.ID, err)
	}
	if added && e.queue != nil {
		e.queue.Enqueue(notify.Notification{
			Kind:  notify.KindAchievement,
			Title: "Achievement unlocked",
			Body:  fmt.Sprintf("%s %s", rule.Icon, rule.Title),
		})
	}
	return added, nil
}

// Status pairs a rule with its unlock state for display.
type Status struct {
	Rule     Rule
	Unlocked bool
}

// Statuses returns the full table annotated with persisted unlock state.
func (e *Evaluator) Statuses(ctx context.Context) ([]Status, error) {
	ids, err := e.store.Achievements(ctx)
	if err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}

	rules := Rules()
	out := make([]Status, 0, len(rules))
	for _, rule := range rules {
		out = append(out, Status{Rule: rule, Unlocked: unlocked[rule.ID]})
	}
	return out, nil
}
