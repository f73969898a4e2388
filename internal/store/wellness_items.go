package store

import (
	"context"
	"fmt"
)

const wellnessItemColumns = "id, user_id, title, description, category, completed, created_at"

func scanWellnessItem(row rowScanner) (*WellnessItem, error) {
	var w WellnessItem
	if err := row.Scan(&w.ID, &w.UserID, &w.Title, &w.Description, &w.Category, &w.Completed, &w.CreatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *SQLiteStore) CreateWellnessItem(ctx context.Context, item *WellnessItem) error {
	if err := validateRequired("title", item.Title); err != nil {
		return err
	}
	item.ID, item.CreatedAt = s.newRecord()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO wellness_items ("+wellnessItemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.UserID, item.Title, item.Description, item.Category, item.Completed, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert wellness item: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetWellnessItem(ctx context.Context, id, userID string) (*WellnessItem, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+wellnessItemColumns+" FROM wellness_items WHERE id = ? AND user_id = ?", id, userID)
	item, err := scanWellnessItem(row)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}

func (s *SQLiteStore) ListWellnessItems(ctx context.Context, userID string) ([]WellnessItem, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+wellnessItemColumns+" FROM wellness_items WHERE user_id = ? ORDER BY created_at ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wellness items: %w", err)
	}
	defer rows.Close()

	items := []WellnessItem{}
	for rows.Next() {
		item, err := scanWellnessItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wellness item row: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) UpdateWellnessItem(ctx context.Context, id, userID string, patch WellnessItemPatch) (*WellnessItem, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var cols []column
	if patch.Title != nil {
		cols = append(cols, column{"title", *patch.Title})
	}
	if patch.Description != nil {
		cols = append(cols, column{"description", *patch.Description})
	}
	if patch.Category != nil {
		cols = append(cols, column{"category", *patch.Category})
	}
	if patch.Completed != nil {
		cols = append(cols, column{"completed", *patch.Completed})
	}
	if err := s.updateColumns(ctx, "wellness_items", id, userID, cols); err != nil {
		return nil, err
	}
	return s.GetWellnessItem(ctx, id, userID)
}

func (s *SQLiteStore) DeleteWellnessItem(ctx context.Context, id, userID string) error {
	return s.deleteRow(ctx, "wellness_items", id, userID)
}
