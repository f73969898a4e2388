package store

import (
	"context"
	"fmt"
)

const alarmColumns = "id, user_id, label, time, enabled, created_at"

func scanAlarm(row rowScanner) (*Alarm, error) {
	var a Alarm
	if err := row.Scan(&a.ID, &a.UserID, &a.Label, &a.Time, &a.Enabled, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLiteStore) CreateAlarm(ctx context.Context, alarm *Alarm) error {
	if err := validateAlarmTime(alarm.Time); err != nil {
		return err
	}
	alarm.ID, alarm.CreatedAt = s.newRecord()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO alarms ("+alarmColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		alarm.ID, alarm.UserID, alarm.Label, alarm.Time, alarm.Enabled, alarm.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert alarm: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetAlarm(ctx context.Context, id, userID string) (*Alarm, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+alarmColumns+" FROM alarms WHERE id = ? AND user_id = ?", id, userID)
	alarm, err := scanAlarm(row)
	if err != nil {
		return nil, notFound(err)
	}
	return alarm, nil
}

func (s *SQLiteStore) ListAlarms(ctx context.Context, userID string) ([]Alarm, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+alarmColumns+" FROM alarms WHERE user_id = ? ORDER BY time ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alarms: %w", err)
	}
	defer rows.Close()

	alarms := []Alarm{}
	for rows.Next() {
		alarm, err := scanAlarm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alarm row: %w", err)
		}
		alarms = append(alarms, *alarm)
	}
	return alarms, rows.Err()
}

func (s *SQLiteStore) UpdateAlarm(ctx context.Context, id, userID string, patch AlarmPatch) (*Alarm, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var cols []column
	if patch.Label != nil {
		cols = append(cols, column{"label", *patch.Label})
	}
	if patch.Time != nil {
		cols = append(cols, column{"time", *patch.Time})
	}
	if patch.Enabled != nil {
		cols = append(cols, column{"enabled", *patch.Enabled})
	}
	if err := s.updateColumns(ctx, "alarms", id, userID, cols); err != nil {
		return nil, err
	}
	return s.GetAlarm(ctx, id, userID)
}

func (s *SQLiteStore) DeleteAlarm(ctx context.Context, id, userID string) error {
	return s.deleteRow(ctx, "alarms", id, userID)
}
