package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/garagedesk/internal/models"
)

const workerColumns = `id, name, phone, salary_amount, salary_frequency,
	commute_expense, shift_expense, meal_expense, other_expenses,
	payment_status, last_paid, created_at, updated_at`

// CreateWorker persists a new worker. Unset frequency and payment status
// default to Monthly and Unpaid.
func (s *SQLiteStore) CreateWorker(ctx context.Context, w *models.Worker) error {
	now := time.Now().Unix()
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt == 0 {
		w.CreatedAt = now
	}
	if w.UpdatedAt == 0 {
		w.UpdatedAt = w.CreatedAt
	}
	if w.SalaryFrequency == "" {
		w.SalaryFrequency = models.SalaryMonthly
	}
	if w.PaymentStatus == "" {
		w.PaymentStatus = models.PaymentUnpaid
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO workers (`+workerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.Phone, w.SalaryAmount, string(w.SalaryFrequency),
		w.CommuteExpense, w.ShiftExpense, w.MealExpense, w.OtherExpenses,
		string(w.PaymentStatus), w.LastPaid, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

// GetWorker retrieves a worker by ID.
func (s *SQLiteStore) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = ?`, id)
	w, err := scanWorker(row)
	if err != nil {
		return nil, scanErr(err, "worker", id)
	}
	return w, nil
}

// ListWorkers returns every worker ordered by name.
func (s *SQLiteStore) ListWorkers(ctx context.Context) ([]*models.Worker, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []*models.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}
	return workers, nil
}

// UpdateWorker overwrites a worker and bumps UpdatedAt.
func (s *SQLiteStore) UpdateWorker(ctx context.Context, w *models.Worker) error {
	w.UpdatedAt = time.Now().Unix()
	res, err := s.q.ExecContext(ctx,
		`UPDATE workers SET name = ?, phone = ?, salary_amount = ?, salary_frequency = ?,
			commute_expense = ?, shift_expense = ?, meal_expense = ?, other_expenses = ?,
			payment_status = ?, last_paid = ?, updated_at = ?
		 WHERE id = ?`,
		w.Name, w.Phone, w.SalaryAmount, string(w.SalaryFrequency),
		w.CommuteExpense, w.ShiftExpense, w.MealExpense, w.OtherExpenses,
		string(w.PaymentStatus), w.LastPaid, w.UpdatedAt,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	return expectOneRow(res, "worker", w.ID)
}

// DeleteWorker removes a worker. Orders assigned to them keep the ID.
func (s *SQLiteStore) DeleteWorker(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return expectOneRow(res, "worker", id)
}

func scanWorker(r rowScanner) (*models.Worker, error) {
	w := &models.Worker{}
	var frequency, status string
	err := r.Scan(
		&w.ID, &w.Name, &w.Phone, &w.SalaryAmount, &frequency,
		&w.CommuteExpense, &w.ShiftExpense, &w.MealExpense, &w.OtherExpenses,
		&status, &w.LastPaid, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.SalaryFrequency = models.SalaryFrequency(frequency)
	w.PaymentStatus = models.PaymentStatus(status)
	return w, nil
}
