package workorder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/garagedesk/internal/metrics"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/validate"
)

// Processor runs the write paths of the work order lifecycle against a store.
type Processor struct {
	store storage.Store
	now   func() time.Time
}

// NewProcessor creates a processor backed by store.
func NewProcessor(store storage.Store) *Processor {
	return &Processor{store: store, now: time.Now}
}

// Create validates a draft, creates or reuses its customer and persists a
// Pending work order. Both writes share one transaction.
func (p *Processor) Create(ctx context.Context, draft *models.WorkOrderDraft) (*models.WorkOrder, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}
	now := p.now()

	var wo *models.WorkOrder
	err := p.store.WithinTx(ctx, func(tx storage.Store) error {
		customerID := draft.CustomerID
		if customerID != "" {
			if _, err := tx.GetCustomer(ctx, customerID); err != nil {
				return err
			}
		} else {
			customer := NewCustomer(draft, now)
			if err := tx.CreateCustomer(ctx, customer); err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}
			customerID = customer.ID
		}

		var err error
		wo, err = Build(draft, customerID, now)
		if err != nil {
			return err
		}
		if err := tx.CreateWorkOrder(ctx, wo); err != nil {
			return fmt.Errorf("failed to create work order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.WorkOrdersCreated.Inc()
	slog.Info("Work order created", "work_order_id", wo.ID, "customer_id", wo.CustomerID, "total", wo.TotalAmount)
	return wo, nil
}

// Edit applies an edit form to an existing work order.
func (p *Processor) Edit(ctx context.Context, id string, edit *models.WorkOrderEdit) (*models.WorkOrder, error) {
	var wo *models.WorkOrder
	err := p.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		wo, err = tx.GetWorkOrder(ctx, id)
		if err != nil {
			return err
		}
		if err := ApplyEdit(wo, edit); err != nil {
			return err
		}
		return tx.UpdateWorkOrder(ctx, wo)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Work order updated", "work_order_id", wo.ID, "total", wo.TotalAmount)
	return wo, nil
}

// Delete removes a work order. Inventory is not restored.
func (p *Processor) Delete(ctx context.Context, id string) error {
	if err := p.store.DeleteWorkOrder(ctx, id); err != nil {
		return err
	}
	slog.Info("Work order deleted", "work_order_id", id)
	return nil
}
