package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/garagedesk/internal/models"
)

// CreateSpending records an operational expense. A zero Date defaults to now.
func (s *SQLiteStore) CreateSpending(ctx context.Context, sp *models.Spending) error {
	now := time.Now().Unix()
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	if sp.CreatedAt == 0 {
		sp.CreatedAt = now
	}
	if sp.Date == 0 {
		sp.Date = sp.CreatedAt
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO spendings (id, category, amount, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sp.ID, sp.Category, sp.Amount, sp.Date, sp.Description, sp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert spending: %w", err)
	}
	return nil
}

// ListSpendings returns every spending, most recent date first.
func (s *SQLiteStore) ListSpendings(ctx context.Context) ([]*models.Spending, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, category, amount, date, description, created_at
		 FROM spendings ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list spendings: %w", err)
	}
	defer rows.Close()

	spendings := []*models.Spending{}
	for rows.Next() {
		sp := &models.Spending{}
		if err := rows.Scan(&sp.ID, &sp.Category, &sp.Amount, &sp.Date, &sp.Description, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spending: %w", err)
		}
		spendings = append(spendings, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spendings: %w", err)
	}
	return spendings, nil
}

// DeleteSpending removes a spending.
func (s *SQLiteStore) DeleteSpending(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM spendings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete spending: %w", err)
	}
	return expectOneRow(res, "spending", id)
}
