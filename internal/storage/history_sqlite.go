package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focusdesk/internal/core/model"
	_ "modernc.org/sqlite"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS intervals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	mode TEXT NOT NULL,
	planned_seconds INTEGER NOT NULL,
	ended_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS intervals_ended_at ON intervals (ended_at);
`

// HistoryStore persists completed intervals in SQLite.
type HistoryStore struct {
	sqlDB *sql.DB
}

// OpenHistory opens the history database at path, creating it if needed.
func OpenHistory(path string) (*HistoryStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(historySchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &HistoryStore{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *HistoryStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordInterval appends one completed interval.
func (s *HistoryStore) RecordInterval(ctx context.Context, record model.IntervalRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if !record.Mode.Valid() {
		return fmt.Errorf("unknown interval mode %q", record.Mode)
	}
	if record.Planned <= 0 {
		return fmt.Errorf("planned duration must be positive")
	}
	if record.EndedAt.IsZero() {
		record.EndedAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO intervals (mode, planned_seconds, ended_at) VALUES (?, ?, ?)
`,
		string(record.Mode),
		int64(record.Planned/time.Second),
		record.EndedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record interval: %w", err)
	}
	return nil
}

// ListIntervals returns up to limit records, newest first.
func (s *HistoryStore) ListIntervals(ctx context.Context, limit int) ([]model.IntervalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, mode, planned_seconds, ended_at
FROM intervals
ORDER BY ended_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list intervals: %w", err)
	}
	defer rows.Close()

	var records []model.IntervalRecord
	for rows.Next() {
		var (
			record         model.IntervalRecord
			mode           string
			plannedSeconds int64
			endedAt        int64
		)
		if err := rows.Scan(&record.ID, &mode, &plannedSeconds, &endedAt); err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}
		record.Mode = model.Mode(mode)
		record.Planned = time.Duration(plannedSeconds) * time.Second
		record.EndedAt = time.UnixMilli(endedAt).UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intervals: %w", err)
	}
	return records, nil
}

// SummarizeDay aggregates intervals that ended on day's calendar date in
// day's location.
func (s *HistoryStore) SummarizeDay(ctx context.Context, day time.Time) (model.DailySummary, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	summary := model.DailySummary{Day: start}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	if s == nil || s.sqlDB == nil {
		return summary, fmt.Errorf("storage is not configured")
	}
	end := start.AddDate(0, 0, 1)

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT mode, COUNT(*), COALESCE(SUM(planned_seconds), 0)
FROM intervals
WHERE ended_at >= ? AND ended_at < ?
GROUP BY mode
`, start.UTC().UnixMilli(), end.UTC().UnixMilli())
	if err != nil {
		return summary, fmt.Errorf("summarize day: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mode    string
			count   int
			seconds int64
		)
		if err := rows.Scan(&mode, &count, &seconds); err != nil {
			return summary, fmt.Errorf("scan summary: %w", err)
		}
		switch model.Mode(mode) {
		case model.ModeWork:
			summary.WorkIntervals = count
			summary.FocusTime = time.Duration(seconds) * time.Second
		case model.ModeBreak:
			summary.BreakIntervals = count
		}
	}
	if err := rows.Err(); err != nil {
		return summary, fmt.Errorf("iterate summary: %w", err)
	}
	return summary, nil
}
