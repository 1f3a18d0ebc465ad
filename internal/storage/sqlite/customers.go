package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/garagedesk/internal/models"
)

const customerColumns = `id, name, phone, email, notes,
	vehicle_vin, vehicle_make, vehicle_model, vehicle_year, vehicle_color, vehicle_plate, vehicle_notes,
	total_billed, paid_amount, outstanding_balance, created_at`

// CreateCustomer persists a new customer.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Phone, c.Email, c.Notes,
		c.Vehicle.VIN, c.Vehicle.Make, c.Vehicle.Model, c.Vehicle.Year, c.Vehicle.Color, c.Vehicle.Plate, c.Vehicle.Notes,
		c.TotalBilled, c.PaidAmount, c.OutstandingBalance, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

// GetCustomer retrieves a customer by ID.
func (s *SQLiteStore) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, scanErr(err, "customer", id)
	}
	return c, nil
}

// ListCustomers returns every customer, newest first.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer overwrites every mutable field of a customer.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE customers SET name = ?, phone = ?, email = ?, notes = ?,
			vehicle_vin = ?, vehicle_make = ?, vehicle_model = ?, vehicle_year = ?,
			vehicle_color = ?, vehicle_plate = ?, vehicle_notes = ?,
			total_billed = ?, paid_amount = ?, outstanding_balance = ?
		 WHERE id = ?`,
		c.Name, c.Phone, c.Email, c.Notes,
		c.Vehicle.VIN, c.Vehicle.Make, c.Vehicle.Model, c.Vehicle.Year,
		c.Vehicle.Color, c.Vehicle.Plate, c.Vehicle.Notes,
		c.TotalBilled, c.PaidAmount, c.OutstandingBalance,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return expectOneRow(res, "customer", c.ID)
}

// DeleteCustomer removes a customer. Their work orders are kept.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return expectOneRow(res, "customer", id)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(r rowScanner) (*models.Customer, error) {
	c := &models.Customer{}
	err := r.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes,
		&c.Vehicle.VIN, &c.Vehicle.Make, &c.Vehicle.Model, &c.Vehicle.Year,
		&c.Vehicle.Color, &c.Vehicle.Plate, &c.Vehicle.Notes,
		&c.TotalBilled, &c.PaidAmount, &c.OutstandingBalance, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
