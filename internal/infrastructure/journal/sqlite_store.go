// Package journal persists diagnostic run summaries. It is append-only
// telemetry: nothing in the diagnostic pipeline reads it back, so probe
// outcomes can never depend on a previous run.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/pkg/filesystem"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// SQLiteStore keeps run records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.jarvis/history/runs.db database.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.JarvisDir(), "history", "runs.db")
	return NewSQLiteStoreAt(path)
}

// NewSQLiteStoreAt opens a store at an explicit path (tests use a temp dir).
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		os_description TEXT,
		backend TEXT,
		passed INTEGER,
		failed INTEGER,
		overall_pass INTEGER
	);`)
	return err
}

// SaveRun inserts a run summary.
func (s *SQLiteStore) SaveRun(record domain.RunRecord) error {
	if s.db == nil {
		return fmt.Errorf("journal unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, timestamp, os_description, backend, passed, failed, overall_pass)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(domain.TimestampFormat),
		record.OSDescription,
		record.Backend,
		record.PassedCount,
		record.FailedCount,
		boolToInt(record.OverallPass),
	)
	return err
}

// Runs returns the most recent run summaries.
func (s *SQLiteStore) Runs(limit int) ([]domain.RunRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("journal unavailable at %s", s.path)
	}
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	rows, err := s.db.Query(`SELECT id, timestamp, os_description, backend, passed, failed, overall_pass
		FROM runs ORDER BY datetime(timestamp) DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var overall int
		if err := rows.Scan(&rec.ID, &ts, &rec.OSDescription, &rec.Backend, &rec.PassedCount, &rec.FailedCount, &overall); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.OverallPass = overall == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear removes all journaled runs.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return fmt.Errorf("journal unavailable at %s", s.path)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.RunJournal = (*SQLiteStore)(nil)
