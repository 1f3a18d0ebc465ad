package workorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/garagedesk/internal/metrics"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
	"github.com/mmynk/garagedesk/internal/storage"
)

// Deduction is one stock change applied while completing an order.
type Deduction struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Name            string  `json:"name"`
	Requested       float64 `json:"requested"`
	Before          float64 `json:"before"`
	After           float64 `json:"after"`
}

// Completion reports what Complete did.
type Completion struct {
	Order      *models.WorkOrder `json:"order"`
	Deductions []Deduction       `json:"deductions"`

	// Skipped lists the catalog IDs of part lines whose inventory item no
	// longer exists.
	Skipped []string `json:"skipped"`

	// AlreadyCompleted is set when the order was Completed before the call;
	// nothing was changed.
	AlreadyCompleted bool `json:"alreadyCompleted"`
}

// Complete finalises a Pending work order: stock is deducted for every
// inventory-linked part line and the order is marked Completed. All writes
// happen in one transaction. A missing order returns storage.ErrNotFound; an
// order that is already Completed is returned unchanged.
func (p *Processor) Complete(ctx context.Context, id string) (*Completion, error) {
	result := &Completion{Deductions: []Deduction{}, Skipped: []string{}}

	err := p.store.WithinTx(ctx, func(tx storage.Store) error {
		wo, err := tx.GetWorkOrder(ctx, id)
		if err != nil {
			return err
		}
		result.Order = wo
		if wo.IsCompleted() {
			result.AlreadyCompleted = true
			return nil
		}

		for _, li := range wo.LineItems {
			if !li.LinksInventory() {
				continue
			}
			d, err := deduct(ctx, tx, li)
			if errors.Is(err, storage.ErrNotFound) {
				result.Skipped = append(result.Skipped, li.Catalog)
				continue
			}
			if err != nil {
				return err
			}
			result.Deductions = append(result.Deductions, d)
		}

		wo.Status = models.StatusCompleted
		wo.CompletedDate = p.now().Unix()
		if err := tx.UpdateWorkOrder(ctx, wo); err != nil {
			return fmt.Errorf("failed to mark work order completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadyCompleted {
		slog.Debug("Work order already completed", "work_order_id", id)
		return result, nil
	}

	metrics.WorkOrdersCompleted.Inc()
	for _, d := range result.Deductions {
		metrics.InventoryDeducted.Add(d.Before - d.After)
	}
	for _, itemID := range result.Skipped {
		slog.Warn("Inventory item missing, deduction skipped", "work_order_id", id, "inventory_item_id", itemID)
	}
	slog.Info("Work order completed",
		"work_order_id", id,
		"deductions", len(result.Deductions),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// deduct lowers the stock of the item a part line references, flooring at 0.
func deduct(ctx context.Context, tx storage.Store, li models.LineItem) (Deduction, error) {
	item, err := tx.GetInventoryItem(ctx, li.Catalog)
	if err != nil {
		return Deduction{}, err
	}

	d := Deduction{
		InventoryItemID: item.ID,
		Name:            item.Name,
		Requested:       li.Quantity,
		Before:          item.QuantityOnHand,
		After:           money.Max0(money.Sub(item.QuantityOnHand, li.Quantity)),
	}
	item.QuantityOnHand = d.After
	if err := tx.UpdateInventoryItem(ctx, item); err != nil {
		return Deduction{}, fmt.Errorf("failed to deduct stock for %s: %w", item.ID, err)
	}
	return d, nil
}
