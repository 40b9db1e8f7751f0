// Package store persists all Neuroforge state in a local SQLite database,
// exposed as a small set of typed key-value accessors. Reads are
// self-healing: a value that fails to parse is logged, reset to its
// documented fallback, and the fallback returned, so one corrupt entry never
// wedges the application.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle. Single writer, no cross-process
// coordination; last write wins by construction.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open connects to the SQLite database at dsn, applies pragmas, and creates
// the state table if missing.
func Open(dsn string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. NEUROFORGE_DB environment variable
// 2. $XDG_DATA_HOME/neuroforge/neuroforge.db
// 3. ~/.local/share/neuroforge/neuroforge.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("NEUROFORGE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "neuroforge", "neuroforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// raw fetches the stored string for key. found is false when absent.
func (s *Store) raw(ctx context.Context, key string) (value string, found bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// set upserts a key. Every write is immediately visible to later reads.
func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// heal overwrites a corrupt key with its fallback representation. Failure to
// heal is logged and otherwise ignored; the read already has its fallback.
func (s *Store) heal(ctx context.Context, key, fallback string, cause error) {
	s.log.Warn("resetting corrupt state entry", "key", key, "error", cause)
	if err := s.set(ctx, key, fallback); err != nil {
		s.log.Error("failed to heal state entry", "key", key, "error", err)
	}
}

// getJSON reads a JSON-valued key, healing corruption to the fallback.
func getJSON[T any](ctx context.Context, s *Store, key string, fallback T) (T, error) {
	raw, found, err := s.raw(ctx, key)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		fb, _ := json.Marshal(fallback)
		s.heal(ctx, key, string(fb), err)
		return fallback, nil
	}
	return out, nil
}

// setJSON writes a JSON-valued key.
func setJSON[T any](ctx context.Context, s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.set(ctx, key, string(raw))
}

// getInt reads a stringified integer key, healing corruption to fallback.
func (s *Store) getInt(ctx context.Context, key string, fallback int) (int, error) {
	raw, found, err := s.raw(ctx, key)
	if err != nil {
		return fallback, err
	}
	if !found {
		return fallback, nil
	}

	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		s.heal(ctx, key, strconv.Itoa(fallback), convErr)
		return fallback, nil
	}
	return n, nil
}

// History returns the ordered assessment history. Fallback: empty slice.
func (s *Store) History(ctx context.Context) ([]Record, error) {
	return getJSON(ctx, s, KeyHistory, []Record{})
}

// SetHistory replaces the whole history sequence.
func (s *Store) SetHistory(ctx context.Context, history []Record) error {
	if history == nil {
		history = []Record{}
	}
	return setJSON(ctx, s, KeyHistory, history)
}

// Achievements returns unlocked achievement ids in unlock order.
// Fallback: empty slice.
func (s *Store) Achievements(ctx context.Context) ([]string, error) {
	return getJSON(ctx, s, KeyAchievements, []string{})
}

// SetAchievements replaces the unlock set.
func (s *Store) SetAchievements(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return setJSON(ctx, s, KeyAchievements, ids)
}

// UnlockAchievement adds id to the unlock set. Returns true only the first
// time an id is added, so callers can notify exactly once.
func (s *Store) UnlockAchievement(ctx context.Context, id string) (bool, error) {
	ids, err := s.Achievements(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return false, nil
		}
	}
	if err := s.SetAchievements(ctx, append(ids, id)); err != nil {
		return false, err
	}
	return true, nil
}

// XP returns cumulative experience points. Fallback: 0.
func (s *Store) XP(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyXP, 0)
}

// SetXP stores cumulative XP, clamped at zero.
func (s *Store) SetXP(ctx context.Context, xp int) error {
	if xp < 0 {
		xp = 0
	}
	return s.set(ctx, KeyXP, strconv.Itoa(xp))
}

// Streak returns the consecutive-day streak. Fallback: 0.
func (s *Store) Streak(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyStreak, 0)
}

// SetStreak stores the streak counter, clamped at zero.
func (s *Store) SetStreak(ctx context.Context, streak int) error {
	if streak < 0 {
		streak = 0
	}
	return s.set(ctx, KeyStreak, strconv.Itoa(streak))
}

// LastActiveDate returns the YYYY-MM-DD day of the last submission, or ""
// when none is recorded.
func (s *Store) LastActiveDate(ctx context.Context) (string, error) {
	raw, found, err := s.raw(ctx, KeyLastActiveDate)
	if err != nil || !found {
		return "", err
	}
	return raw, nil
}

// SetLastActiveDate stores the last-active calendar day.
func (s *Store) SetLastActiveDate(ctx context.Context, date string) error {
	return s.set(ctx, KeyLastActiveDate, date)
}

// LastViewedIndex returns the history index last shown to the user.
// Fallback: -1 (nothing viewed).
func (s *Store) LastViewedIndex(ctx context.Context) (int, error) {
	return s.getInt(ctx, KeyLastViewedIndex, -1)
}

// SetLastViewedIndex stores the last-viewed history index.
func (s *Store) SetLastViewedIndex(ctx context.Context, idx int) error {
	return s.set(ctx, KeyLastViewedIndex, strconv.Itoa(idx))
}

// ResetAll irreversibly clears every known key.
func (s *Store) ResetAll(ctx context.Context) error {
	for _, key := range allKeys {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// Put writes a raw value for key. Exposed for import, which has already
// validated and re-marshaled each section.
func (s *Store) Put(ctx context.Context, key, value string) error {
	return s.set(ctx, key, value)
}
