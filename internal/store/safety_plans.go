package store

import (
	"context"
	"fmt"
)

const safetyPlanColumns = "id, user_id, warning_signs, coping_strategies, support_contacts, safe_environment, created_at"

func scanSafetyPlan(row rowScanner) (*SafetyPlan, error) {
	var p SafetyPlan
	if err := row.Scan(&p.ID, &p.UserID, &p.WarningSigns, &p.CopingStrategies, &p.SupportContacts, &p.SafeEnvironment, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) CreateSafetyPlan(ctx context.Context, plan *SafetyPlan) error {
	plan.ID, plan.CreatedAt = s.newRecord()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO safety_plans ("+safetyPlanColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		plan.ID, plan.UserID, plan.WarningSigns, plan.CopingStrategies, plan.SupportContacts, plan.SafeEnvironment, plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert safety plan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSafetyPlan(ctx context.Context, id, userID string) (*SafetyPlan, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+safetyPlanColumns+" FROM safety_plans WHERE id = ? AND user_id = ?", id, userID)
	plan, err := scanSafetyPlan(row)
	if err != nil {
		return nil, notFound(err)
	}
	return plan, nil
}

func (s *SQLiteStore) ListSafetyPlans(ctx context.Context, userID string) ([]SafetyPlan, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+safetyPlanColumns+" FROM safety_plans WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query safety plans: %w", err)
	}
	defer rows.Close()

	plans := []SafetyPlan{}
	for rows.Next() {
		plan, err := scanSafetyPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan safety plan row: %w", err)
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

func (s *SQLiteStore) UpdateSafetyPlan(ctx context.Context, id, userID string, patch SafetyPlanPatch) (*SafetyPlan, error) {
	var cols []column
	if patch.WarningSigns != nil {
		cols = append(cols, column{"warning_signs", *patch.WarningSigns})
	}
	if patch.CopingStrategies != nil {
		cols = append(cols, column{"coping_strategies", *patch.CopingStrategies})
	}
	if patch.SupportContacts != nil {
		cols = append(cols, column{"support_contacts", *patch.SupportContacts})
	}
	if patch.SafeEnvironment != nil {
		cols = append(cols, column{"safe_environment", *patch.SafeEnvironment})
	}
	if err := s.updateColumns(ctx, "safety_plans", id, userID, cols); err != nil {
		return nil, err
	}
	return s.GetSafetyPlan(ctx, id, userID)
}

func (s *SQLiteStore) DeleteSafetyPlan(ctx context.Context, id, userID string) error {
	return s.deleteRow(ctx, "safety_plans", id, userID)
}
