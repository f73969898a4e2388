package store

import (
	"context"
	"fmt"
)

const contactColumns = "id, user_id, name, phone, relationship, created_at"

func scanContact(row rowScanner) (*EmergencyContact, error) {
	var c EmergencyContact
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relationship, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) CreateContact(ctx context.Context, contact *EmergencyContact) error {
	if err := validateRequired("name", contact.Name); err != nil {
		return err
	}
	if err := validateRequired("phone", contact.Phone); err != nil {
		return err
	}
	contact.ID, contact.CreatedAt = s.newRecord()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO emergency_contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		contact.ID, contact.UserID, contact.Name, contact.Phone, contact.Relationship, contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert emergency contact: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetContact(ctx context.Context, id, userID string) (*EmergencyContact, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+contactColumns+" FROM emergency_contacts WHERE id = ? AND user_id = ?", id, userID)
	contact, err := scanContact(row)
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

func (s *SQLiteStore) ListContacts(ctx context.Context, userID string) ([]EmergencyContact, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+contactColumns+" FROM emergency_contacts WHERE user_id = ? ORDER BY name ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query emergency contacts: %w", err)
	}
	defer rows.Close()

	contacts := []EmergencyContact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency contact row: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	return contacts, rows.Err()
}

func (s *SQLiteStore) UpdateContact(ctx context.Context, id, userID string, patch ContactPatch) (*EmergencyContact, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var cols []column
	if patch.Name != nil {
		cols = append(cols, column{"name", *patch.Name})
	}
	if patch.Phone != nil {
		cols = append(cols, column{"phone", *patch.Phone})
	}
	if patch.Relationship != nil {
		cols = append(cols, column{"relationship", *patch.Relationship})
	}
	if err := s.updateColumns(ctx, "emergency_contacts", id, userID, cols); err != nil {
		return nil, err
	}
	return s.GetContact(ctx, id, userID)
}

func (s *SQLiteStore) DeleteContact(ctx context.Context, id, userID string) error {
	return s.deleteRow(ctx, "emergency_contacts", id, userID)
}
