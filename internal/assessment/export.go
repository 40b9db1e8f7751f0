package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"neuroforge/internal/achievement"
	"neuroforge/internal/progression"
	"neuroforge/internal/store"
)

// Document is the bulk export/import shape: the complete persisted state in
// one JSON object.
type Document struct {
	History        []store.Record `json:"history"`
	Achievements   []string       `json:"achievements"`
	XP             int            `json:"xp"`
	Streak         int            `json:"streak"`
	LastActiveDate string         `json:"lastActiveDate"`
}

// Export bundles current state into a Document.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	history, err := s.store.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	ids, err := s.store.Achievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("read achievements: %w", err)
	}
	xp, err := s.store.XP(ctx)
	if err != nil {
		return nil, fmt.Errorf("read xp: %w", err)
	}
	streakCount, err := s.store.Streak(ctx)
	if err != nil {
		return nil, fmt.Errorf("read streak: %w", err)
	}
	lastActive, err := s.store.LastActiveDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("read last active date: %w", err)
	}

	return &Document{
		History:        history,
		Achievements:   ids,
		XP:             xp,
		Streak:         streakCount,
		LastActiveDate: lastActive,
	}, nil
}

// ExportJSON renders the export document as indented JSON.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	doc, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportReport lists which sections were applied and which were skipped
// with the reason.
type ImportReport struct {
	Applied []string
	Skipped map[string]string
}

// Import applies a previously exported document. Each section is validated
// independently; sections that fail validation are skipped (recorded in the
// report) while valid ones are applied. Existing state for skipped sections
// is left untouched. A document that is not a JSON object at all is an
// error and nothing is applied.
func (s *Service) Import(ctx context.Context, data []byte) (*ImportReport, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("import document is not a JSON object: %w", err)
	}

	report := &ImportReport{Skipped: make(map[string]string)}

	apply := func(name string, fn func(json.RawMessage) error) {
		raw, present := top[name]
		if !present {
			report.Skipped[name] = "absent"
			return
		}

		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			report.Skipped[name] = err.Error()
			return
		}
		if err := validateSection(name, parsed); err != nil {
			report.Skipped[name] = err.Error()
			return
		}
		if err := fn(raw); err != nil {
			report.Skipped[name] = err.Error()
			return
		}
		report.Applied = append(report.Applied, name)
	}

	apply("history", func(raw json.RawMessage) error {
		var history []store.Record
		if err := json.Unmarshal(raw, &history); err != nil {
			return err
		}
		// Re-derive totals and labels so the stored invariant holds even
		// when the document was edited by hand.
		for i := range history {
			r := &history[i]
			r.Total = r.Focus + r.Discipline + r.Execution + r.Consistency
			r.MindType = string(progression.Classify(r.Total))
			r.Rank = string(progression.RankOf(r.Total))
		}
		return s.store.SetHistory(ctx, history)
	})

	apply("achievements", func(raw json.RawMessage) error {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return err
		}
		// The unlock set must stay a subset of the static rule table.
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, known := achievement.RuleByID(id); known {
				kept = append(kept, id)
			} else {
				slog.Warn("dropping unknown achievement id on import", "id", id)
			}
		}
		return s.store.SetAchievements(ctx, kept)
	})

	apply("xp", func(raw json.RawMessage) error {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		return s.store.SetXP(ctx, n)
	})

	apply("streak", func(raw json.RawMessage) error {
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		return s.store.SetStreak(ctx, n)
	})

	apply("lastActiveDate", func(raw json.RawMessage) error {
		var date string
		if err := json.Unmarshal(raw, &date); err != nil {
			return err
		}
		return s.store.SetLastActiveDate(ctx, date)
	})

	return report, nil
}
