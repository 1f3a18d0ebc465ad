// Package jobs runs scheduled background work.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/metrics"
	"github.com/mmynk/garagedesk/internal/models"
)

// DefaultStockAlertSchedule runs the scan every day at 07:00.
const DefaultStockAlertSchedule = "0 7 * * *"

// InventoryLister is the store capability the stock scan needs.
type InventoryLister interface {
	ListInventoryItems(ctx context.Context) ([]*models.InventoryItem, error)
}

// StockAlert periodically logs inventory items at or below their reorder
// point and publishes the count as a gauge.
type StockAlert struct {
	store     InventoryLister
	scheduler *cron.Cron
	schedule  string
	timeout   time.Duration
}

// NewStockAlert creates a stock scan on the given five-field cron schedule.
func NewStockAlert(store InventoryLister, schedule string) *StockAlert {
	if schedule == "" {
		schedule = DefaultStockAlertSchedule
	}
	return &StockAlert{
		store:     store,
		scheduler: cron.New(),
		schedule:  schedule,
		timeout:   30 * time.Second,
	}
}

// Start schedules the scan, starts the scheduler and runs one scan right away
// so the gauge is populated at boot.
func (s *StockAlert) Start(ctx context.Context) error {
	_, err := s.scheduler.AddFunc(s.schedule, func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling stock alert %q: %w", s.schedule, err)
	}

	s.scheduler.Start()
	slog.Info("Stock alert scheduler started", "schedule", s.schedule)

	s.runScan(ctx)
	return nil
}

// Stop halts the scheduler and waits for a running scan to finish.
func (s *StockAlert) Stop() {
	<-s.scheduler.Stop().Done()
	slog.Info("Stock alert scheduler stopped")
}

func (s *StockAlert) runScan(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.Scan(ctx); err != nil {
		slog.Error("Stock alert scan failed", "error", err)
	}
}

// Scan lists low-stock items, logs each and updates the gauge.
func (s *StockAlert) Scan(ctx context.Context) ([]*models.InventoryItem, error) {
	items, err := s.store.ListInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	low := calculator.LowStock(items)
	metrics.LowStockItems.Set(float64(len(low)))
	for _, item := range low {
		slog.Warn("Inventory low",
			"inventory_item_id", item.ID,
			"name", item.Name,
			"sku", item.SKU,
			"on_hand", item.QuantityOnHand,
			"reorder_point", item.ReorderPoint(),
		)
	}
	slog.Info("Stock alert scan finished", "items", len(items), "low", len(low))
	return low, nil
}
