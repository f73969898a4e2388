package store

import (
	"context"
	"fmt"
	"time"
)

const logColumns = "id, user_id, mood, energy, note, created_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLog(row rowScanner) (*LogEntry, error) {
	var e LogEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Mood, &e.Energy, &e.Note, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLiteStore) CreateLog(ctx context.Context, entry *LogEntry) error {
	if err := validateMood(entry.Mood); err != nil {
		return err
	}
	if err := validateEnergy(entry.Energy); err != nil {
		return err
	}
	entry.ID, entry.CreatedAt = s.newRecord()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO logs ("+logColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.UserID, entry.Mood, entry.Energy, entry.Note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetLog(ctx context.Context, id, userID string) (*LogEntry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+logColumns+" FROM logs WHERE id = ? AND user_id = ?", id, userID)
	entry, err := scanLog(row)
	if err != nil {
		return nil, notFound(err)
	}
	return entry, nil
}

func (s *SQLiteStore) ListLogs(ctx context.Context, userID string) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+logColumns+" FROM logs WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	entries := []LogEntry{}
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// ListLogTimestamps returns the creation time of each of the user's logs.
func (s *SQLiteStore) ListLogTimestamps(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT created_at FROM logs WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query log timestamps: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan log timestamp: %w", err)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateLog(ctx context.Context, id, userID string, patch LogPatch) (*LogEntry, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var cols []column
	if patch.Mood != nil {
		cols = append(cols, column{"mood", *patch.Mood})
	}
	if patch.Energy != nil {
		cols = append(cols, column{"energy", *patch.Energy})
	}
	if patch.Note != nil {
		cols = append(cols, column{"note", *patch.Note})
	}
	if err := s.updateColumns(ctx, "logs", id, userID, cols); err != nil {
		return nil, err
	}
	return s.GetLog(ctx, id, userID)
}

func (s *SQLiteStore) DeleteLog(ctx context.Context, id, userID string) error {
	return s.deleteRow(ctx, "logs", id, userID)
}
