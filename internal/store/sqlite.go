package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var (
	// ErrNotFound is returned for ids that do not exist or belong to another user.
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db, now: time.Now}
	if err = store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS logs (
        id TEXT PRIMARY KEY, -- UUID
        user_id TEXT NOT NULL,
        mood TEXT NOT NULL,
        energy INTEGER NOT NULL DEFAULT 0,
        note TEXT NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_logs_user_created ON logs (user_id, created_at);

    CREATE TABLE IF NOT EXISTS alarms (
        id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL,
        label TEXT NOT NULL DEFAULT '',
        time TEXT NOT NULL,
        enabled BOOLEAN NOT NULL DEFAULT TRUE,
        created_at DATETIME NOT NULL
    );

    CREATE TABLE IF NOT EXISTS emergency_contacts (
        id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL,
        name TEXT NOT NULL,
        phone TEXT NOT NULL,
        relationship TEXT NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL
    );

    CREATE TABLE IF NOT EXISTS safety_plans (
        id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL,
        warning_signs TEXT NOT NULL DEFAULT '',
        coping_strategies TEXT NOT NULL DEFAULT '',
        support_contacts TEXT NOT NULL DEFAULT '',
        safe_environment TEXT NOT NULL DEFAULT '',
        created_at DATETIME NOT NULL
    );

    CREATE TABLE IF NOT EXISTS wellness_items (
        id TEXT PRIMARY KEY,
        user_id TEXT NOT NULL,
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        category TEXT NOT NULL DEFAULT '',
        completed BOOLEAN NOT NULL DEFAULT FALSE,
        created_at DATETIME NOT NULL
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// newRecord returns a fresh id and creation time.
func (s *SQLiteStore) newRecord() (string, time.Time) {
	return uuid.NewString(), s.now().UTC()
}

type column struct {
	name  string
	value interface{}
}

// updateColumns applies a patch. Column names come from the patch types,
// never from the request, so the statement is built from a closed set.
func (s *SQLiteStore) updateColumns(ctx context.Context, table, id, userID string, cols []column) error {
	if len(cols) == 0 {
		return s.exists(ctx, table, id, userID)
	}

	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+2)
	for i, c := range cols {
		sets[i] = c.name + " = ?"
		args = append(args, c.value)
	}
	args = append(args, id, userID)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? AND user_id = ?", table, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) exists(ctx context.Context, table, id, userID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT 1 FROM %s WHERE id = ? AND user_id = ?", table), id, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	return nil
}

func (s *SQLiteStore) deleteRow(ctx context.Context, table, id, userID string) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ? AND user_id = ?", table), id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
