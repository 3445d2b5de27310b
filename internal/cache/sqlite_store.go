package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmoreau/loanboard/internal/models"
	_ "modernc.org/sqlite"
)

const (
	kindMetrics   = "metrics"
	kindRunResult = "run_result"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	office     TEXT NOT NULL,
	week_start TEXT NOT NULL,
	kind       TEXT NOT NULL,
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (office, week_start, kind)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetMetrics(office, weekStart string) (*models.Metrics, bool, error) {
	var m models.Metrics
	ok, err := s.get(office, weekStart, kindMetrics, &m)
	if !ok || err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

func (s *SQLiteStore) SetMetrics(office, weekStart string, m *models.Metrics) error {
	return s.set(office, weekStart, kindMetrics, m)
}

func (s *SQLiteStore) GetRunResult(office, weekStart string) (*models.RunResult, bool, error) {
	var r models.RunResult
	ok, err := s.get(office, weekStart, kindRunResult, &r)
	if !ok || err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

func (s *SQLiteStore) SetRunResult(office, weekStart string, r *models.RunResult) error {
	return s.set(office, weekStart, kindRunResult, r)
}

func (s *SQLiteStore) Invalidate(office string) error {
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE office = ?`, office); err != nil {
		return fmt.Errorf("failed to invalidate cache for %s: %w", office, err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func (s *SQLiteStore) get(office, weekStart, kind string, out any) (bool, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM snapshots WHERE office = ? AND week_start = ? AND kind = ?`,
		office, weekStart, kind,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("failed to parse cached %s: %w", kind, err)
	}
	return true, nil
}

func (s *SQLiteStore) set(office, weekStart, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", kind, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (office, week_start, kind, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (office, week_start, kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		office, weekStart, kind, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
