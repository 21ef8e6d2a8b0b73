package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manfredi31/timerapplication/internal/core/model"
	_ "github.com/mattn/go-sqlite3"
)

const (
	historyFileName    = "history.db"
	defaultRecentLimit = 50
)

// History stores finished countdown sessions in a local SQLite database.
type History struct {
	db *sql.DB
}

// OpenHistory opens the session log at the given path, creating the file and
// schema on first use.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	history := &History{db: db}
	if err := history.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return history, nil
}

// DefaultHistoryPath resolves the per-user history database location.
func DefaultHistoryPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, historyFileName), nil
}

// Close releases the underlying database handle.
func (history *History) Close() error {
	return history.db.Close()
}

func (history *History) initSchema() error {
	_, err := history.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            label TEXT NOT NULL,
            total_seconds INTEGER NOT NULL,
            elapsed_seconds INTEGER NOT NULL,
            started_at DATETIME NOT NULL,
            ended_at DATETIME NOT NULL,
            outcome TEXT NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Record appends one finished session and fills in its assigned ID.
func (history *History) Record(record *model.SessionRecord) error {
	result, err := history.db.Exec(`
        INSERT INTO sessions (label, total_seconds, elapsed_seconds, started_at, ended_at, outcome)
        VALUES (?, ?, ?, ?, ?, ?)
    `,
		record.Label,
		int64(record.Total/time.Second),
		int64(record.Elapsed/time.Second),
		record.StartedAt.UTC(),
		record.EndedAt.UTC(),
		string(record.Outcome),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("read session id: %w", err)
	}
	record.ID = id
	return nil
}

// Recent returns up to limit sessions, newest first. A non-positive limit
// selects a sensible default.
func (history *History) Recent(limit int) ([]model.SessionRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := history.db.Query(`
        SELECT id, label, total_seconds, elapsed_seconds, started_at, ended_at, outcome
        FROM sessions
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []model.SessionRecord
	for rows.Next() {
		var (
			record  model.SessionRecord
			total   int64
			elapsed int64
			outcome string
		)
		if err := rows.Scan(
			&record.ID,
			&record.Label,
			&total,
			&elapsed,
			&record.StartedAt,
			&record.EndedAt,
			&outcome,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		record.Total = time.Duration(total) * time.Second
		record.Elapsed = time.Duration(elapsed) * time.Second
		record.Outcome = model.Outcome(outcome)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session rows: %w", err)
	}
	return records, nil
}

// TotalsSince reports how many sessions ended at or after the given time and
// how much countdown time they accumulated.
func (history *History) TotalsSince(since time.Time) (int, time.Duration, error) {
	var (
		sessions int
		elapsed  int64
	)
	err := history.db.QueryRow(`
        SELECT COUNT(*), COALESCE(SUM(elapsed_seconds), 0)
        FROM sessions
        WHERE ended_at >= ?
    `, since.UTC()).Scan(&sessions, &elapsed)
	if err != nil {
		return 0, 0, fmt.Errorf("query session totals: %w", err)
	}
	return sessions, time.Duration(elapsed) * time.Second, nil
}

// Clear deletes every stored session.
func (history *History) Clear() error {
	if _, err := history.db.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}
