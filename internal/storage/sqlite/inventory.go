package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/garagedesk/internal/models"
)

const inventoryColumns = `id, name, sku, description, quantity_on_hand, min_stock_level,
	unit_cost, unit_price, created_at`

// CreateInventoryItem persists a stocked part. A missing SKU becomes
// SKU-<unix millis>.
func (s *SQLiteStore) CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	now := time.Now()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = now.Unix()
	}
	if item.SKU == "" {
		item.SKU = fmt.Sprintf("SKU-%d", now.UnixMilli())
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO inventory_items (`+inventoryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.SKU, item.Description, item.QuantityOnHand, item.MinStockLevel,
		item.UnitCost, item.UnitPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

// GetInventoryItem retrieves a stocked part by ID.
func (s *SQLiteStore) GetInventoryItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = ?`, id)
	item, err := scanInventoryItem(row)
	if err != nil {
		return nil, scanErr(err, "inventory item", id)
	}
	return item, nil
}

// ListInventoryItems returns every stocked part ordered by name.
func (s *SQLiteStore) ListInventoryItems(ctx context.Context) ([]*models.InventoryItem, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory items: %w", err)
	}
	return items, nil
}

// UpdateInventoryItem overwrites a stocked part.
func (s *SQLiteStore) UpdateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE inventory_items SET name = ?, sku = ?, description = ?, quantity_on_hand = ?,
			min_stock_level = ?, unit_cost = ?, unit_price = ?
		 WHERE id = ?`,
		item.Name, item.SKU, item.Description, item.QuantityOnHand,
		item.MinStockLevel, item.UnitCost, item.UnitPrice,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return expectOneRow(res, "inventory item", item.ID)
}

// DeleteInventoryItem removes a stocked part.
func (s *SQLiteStore) DeleteInventoryItem(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return expectOneRow(res, "inventory item", id)
}

func scanInventoryItem(r rowScanner) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := r.Scan(
		&item.ID, &item.Name, &item.SKU, &item.Description, &item.QuantityOnHand, &item.MinStockLevel,
		&item.UnitCost, &item.UnitPrice, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

const serviceItemColumns = `id, name, description, default_price, created_at`

// CreateServiceItem persists a labour catalog entry.
func (s *SQLiteStore) CreateServiceItem(ctx context.Context, item *models.ServiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO service_items (`+serviceItemColumns+`) VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description, item.DefaultPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert service item: %w", err)
	}
	return nil
}

// GetServiceItem retrieves a labour catalog entry by ID.
func (s *SQLiteStore) GetServiceItem(ctx context.Context, id string) (*models.ServiceItem, error) {
	item := &models.ServiceItem{}
	err := s.q.QueryRowContext(ctx, `SELECT `+serviceItemColumns+` FROM service_items WHERE id = ?`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.DefaultPrice, &item.CreatedAt)
	if err != nil {
		return nil, scanErr(err, "service item", id)
	}
	return item, nil
}

// ListServiceItems returns the labour catalog ordered by name.
func (s *SQLiteStore) ListServiceItems(ctx context.Context) ([]*models.ServiceItem, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+serviceItemColumns+` FROM service_items ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list service items: %w", err)
	}
	defer rows.Close()

	items := []*models.ServiceItem{}
	for rows.Next() {
		item := &models.ServiceItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.DefaultPrice, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan service item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service items: %w", err)
	}
	return items, nil
}

// UpdateServiceItem overwrites a labour catalog entry.
func (s *SQLiteStore) UpdateServiceItem(ctx context.Context, item *models.ServiceItem) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE service_items SET name = ?, description = ?, default_price = ? WHERE id = ?`,
		item.Name, item.Description, item.DefaultPrice, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service item: %w", err)
	}
	return expectOneRow(res, "service item", item.ID)
}

// DeleteServiceItem removes a labour catalog entry.
func (s *SQLiteStore) DeleteServiceItem(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM service_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete service item: %w", err)
	}
	return expectOneRow(res, "service item", id)
}
