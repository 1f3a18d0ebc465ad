package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/garagedesk/internal/models"
)

const workOrderColumns = `id, customer_id, temp_customer_name, temp_customer_phone, temp_vehicle,
	description, status, arrival, scheduled, worker_id, internal_notes,
	labour_cost, parts_cost, parking_charge, taxes, vat, discount,
	amount_received, total_amount, outstanding_balance,
	created_at, quoted_at, completed_date`

// CreateWorkOrder persists a new work order and its line items in one transaction.
func (s *SQLiteStore) CreateWorkOrder(ctx context.Context, wo *models.WorkOrder) error {
	if wo.ID == "" {
		wo.ID = uuid.New().String()
	}
	if wo.CreatedAt == 0 {
		wo.CreatedAt = time.Now().Unix()
	}
	if wo.Status == "" {
		wo.Status = models.StatusPending
	}

	vehicle, err := encodeVehicle(wo.TempVehicle)
	if err != nil {
		return err
	}

	return s.atomic(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO work_orders (`+workOrderColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			wo.ID, wo.CustomerID, wo.TempCustomerName, wo.TempCustomerPhone, vehicle,
			wo.Description, string(wo.Status), wo.Arrival, wo.Scheduled, wo.WorkerID, wo.InternalNotes,
			wo.LabourCost, wo.PartsCost, wo.ParkingCharge, wo.Taxes, wo.VAT, wo.Discount,
			wo.AmountReceived, wo.TotalAmount, wo.OutstandingBalance,
			wo.CreatedAt, wo.QuotedAt, wo.CompletedDate,
		)
		if err != nil {
			return fmt.Errorf("failed to insert work order: %w", err)
		}
		return insertLineItems(ctx, q, wo.ID, wo.LineItems)
	})
}

// GetWorkOrder retrieves a work order by ID, including its line items.
func (s *SQLiteStore) GetWorkOrder(ctx context.Context, id string) (*models.WorkOrder, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+workOrderColumns+` FROM work_orders WHERE id = ?`, id)
	wo, err := scanWorkOrder(row)
	if err != nil {
		return nil, scanErr(err, "work order", id)
	}

	items, err := s.lineItems(ctx, "WHERE work_order_id = ?", id)
	if err != nil {
		return nil, err
	}
	wo.LineItems = items[id]
	if wo.LineItems == nil {
		wo.LineItems = []models.LineItem{}
	}
	return wo, nil
}

// ListWorkOrders returns every work order with its line items, newest first.
func (s *SQLiteStore) ListWorkOrders(ctx context.Context) ([]*models.WorkOrder, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+workOrderColumns+` FROM work_orders ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	orders := []*models.WorkOrder{}
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, wo)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work orders: %w", err)
	}

	// Line items are fetched only after the order rows are closed; the store
	// runs on a single connection.
	items, err := s.lineItems(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, wo := range orders {
		wo.LineItems = items[wo.ID]
		if wo.LineItems == nil {
			wo.LineItems = []models.LineItem{}
		}
	}
	return orders, nil
}

// UpdateWorkOrder overwrites a work order and replaces its line items.
func (s *SQLiteStore) UpdateWorkOrder(ctx context.Context, wo *models.WorkOrder) error {
	vehicle, err := encodeVehicle(wo.TempVehicle)
	if err != nil {
		return err
	}

	return s.atomic(ctx, func(q querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE work_orders SET customer_id = ?, temp_customer_name = ?, temp_customer_phone = ?, temp_vehicle = ?,
				description = ?, status = ?, arrival = ?, scheduled = ?, worker_id = ?, internal_notes = ?,
				labour_cost = ?, parts_cost = ?, parking_charge = ?, taxes = ?, vat = ?, discount = ?,
				amount_received = ?, total_amount = ?, outstanding_balance = ?,
				quoted_at = ?, completed_date = ?
			 WHERE id = ?`,
			wo.CustomerID, wo.TempCustomerName, wo.TempCustomerPhone, vehicle,
			wo.Description, string(wo.Status), wo.Arrival, wo.Scheduled, wo.WorkerID, wo.InternalNotes,
			wo.LabourCost, wo.PartsCost, wo.ParkingCharge, wo.Taxes, wo.VAT, wo.Discount,
			wo.AmountReceived, wo.TotalAmount, wo.OutstandingBalance,
			wo.QuotedAt, wo.CompletedDate,
			wo.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update work order: %w", err)
		}
		if err := expectOneRow(res, "work order", wo.ID); err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, "DELETE FROM work_order_line_items WHERE work_order_id = ?", wo.ID); err != nil {
			return fmt.Errorf("failed to clear line items: %w", err)
		}
		return insertLineItems(ctx, q, wo.ID, wo.LineItems)
	})
}

// DeleteWorkOrder removes a work order; its line items cascade.
func (s *SQLiteStore) DeleteWorkOrder(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM work_orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	return expectOneRow(res, "work order", id)
}

func insertLineItems(ctx context.Context, q querier, orderID string, items []models.LineItem) error {
	for i, li := range items {
		catalog := li.Catalog
		if catalog == "" {
			catalog = models.CatalogOptional
		}
		_, err := q.ExecContext(ctx,
			`INSERT INTO work_order_line_items (work_order_id, position, type, catalog, name, quantity, unit_price)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			orderID, i, string(li.Type), catalog, li.Name, li.Quantity, li.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item: %w", err)
		}
	}
	return nil
}

// lineItems loads line items grouped by work order ID, in position order.
func (s *SQLiteStore) lineItems(ctx context.Context, where string, args ...any) (map[string][]models.LineItem, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT work_order_id, type, catalog, name, quantity, unit_price
		 FROM work_order_line_items `+where+` ORDER BY work_order_id, position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]models.LineItem)
	for rows.Next() {
		var (
			orderID  string
			itemType string
			li       models.LineItem
		)
		if err := rows.Scan(&orderID, &itemType, &li.Catalog, &li.Name, &li.Quantity, &li.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		li.Type = models.LineItemType(itemType)
		items[orderID] = append(items[orderID], li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}
	return items, nil
}

func scanWorkOrder(r rowScanner) (*models.WorkOrder, error) {
	wo := &models.WorkOrder{}
	var (
		status  string
		vehicle sql.NullString
	)
	err := r.Scan(
		&wo.ID, &wo.CustomerID, &wo.TempCustomerName, &wo.TempCustomerPhone, &vehicle,
		&wo.Description, &status, &wo.Arrival, &wo.Scheduled, &wo.WorkerID, &wo.InternalNotes,
		&wo.LabourCost, &wo.PartsCost, &wo.ParkingCharge, &wo.Taxes, &wo.VAT, &wo.Discount,
		&wo.AmountReceived, &wo.TotalAmount, &wo.OutstandingBalance,
		&wo.CreatedAt, &wo.QuotedAt, &wo.CompletedDate,
	)
	if err != nil {
		return nil, err
	}
	wo.Status = models.WorkOrderStatus(status)

	if vehicle.Valid && vehicle.String != "" {
		wo.TempVehicle = &models.Vehicle{}
		if err := json.Unmarshal([]byte(vehicle.String), wo.TempVehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle snapshot: %w", err)
		}
	}
	return wo, nil
}

func encodeVehicle(v *models.Vehicle) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vehicle snapshot: %w", err)
	}
	return string(data), nil
}
