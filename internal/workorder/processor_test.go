package workorder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/storage/sqlite"
	"github.com/mmynk/garagedesk/internal/validate"
)

var fixedNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

func setupProcessor(t *testing.T) (*Processor, storage.Store) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "garagedesk-workorder-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	p := NewProcessor(store)
	p.now = func() time.Time { return fixedNow }
	return p, store
}

func TestProcessorCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer then work order", func(t *testing.T) {
		p, store := setupProcessor(t)

		wo, err := p.Create(ctx, validDraft())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		customer, err := store.GetCustomer(ctx, wo.CustomerID)
		if err != nil {
			t.Fatalf("customer not created: %v", err)
		}
		if customer.Name != "Alice" || customer.Vehicle.VIN == "" {
			t.Errorf("unexpected customer: %+v", customer)
		}

		stored, err := store.GetWorkOrder(ctx, wo.ID)
		if err != nil {
			t.Fatalf("GetWorkOrder failed: %v", err)
		}
		if stored.LabourCost != 100 || stored.PartsCost != 50 {
			t.Errorf("costs = %v/%v, want 100/50", stored.LabourCost, stored.PartsCost)
		}
		if stored.LabourCost+stored.PartsCost != 150 {
			t.Errorf("line items do not reconcile with stored costs")
		}
	})

	t.Run("reuses existing customer", func(t *testing.T) {
		p, store := setupProcessor(t)

		existing := &models.Customer{Name: "Bob", Phone: "555-0199"}
		if err := store.CreateCustomer(ctx, existing); err != nil {
			t.Fatalf("CreateCustomer failed: %v", err)
		}

		draft := validDraft()
		draft.CustomerID = existing.ID
		wo, err := p.Create(ctx, draft)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if wo.CustomerID != existing.ID {
			t.Errorf("CustomerID = %q, want %q", wo.CustomerID, existing.ID)
		}
		customers, _ := store.ListCustomers(ctx)
		if len(customers) != 1 {
			t.Errorf("expected no new customer, have %d", len(customers))
		}
	})

	t.Run("unknown customer rolls back", func(t *testing.T) {
		p, store := setupProcessor(t)

		draft := validDraft()
		draft.CustomerID = "missing"
		if _, err := p.Create(ctx, draft); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Create error = %v, want ErrNotFound", err)
		}
		orders, _ := store.ListWorkOrders(ctx)
		if len(orders) != 0 {
			t.Errorf("expected no work orders, have %d", len(orders))
		}
	})

	t.Run("invalid draft writes nothing", func(t *testing.T) {
		p, store := setupProcessor(t)

		draft := validDraft()
		draft.Customer.Name = ""
		var verr *validate.Error
		if _, err := p.Create(ctx, draft); !errors.As(err, &verr) {
			t.Fatalf("Create error = %v, want validate.Error", err)
		}
		customers, _ := store.ListCustomers(ctx)
		if len(customers) != 0 {
			t.Errorf("expected no customers, have %d", len(customers))
		}
	})
}

func TestProcessorComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("deducts stock and clamps at zero", func(t *testing.T) {
		p, store := setupProcessor(t)

		pads := &models.InventoryItem{Name: "Pads", QuantityOnHand: 5}
		filter := &models.InventoryItem{Name: "Filter", QuantityOnHand: 10}
		for _, item := range []*models.InventoryItem{pads, filter} {
			if err := store.CreateInventoryItem(ctx, item); err != nil {
				t.Fatalf("CreateInventoryItem failed: %v", err)
			}
		}

		draft := validDraft()
		draft.LineItems = []models.LineItemInput{
			{Type: models.LineItemService, Quantity: 1, UnitPrice: 80},
			{Type: models.LineItemPart, Catalog: pads.ID, Quantity: 8, UnitPrice: 20},
			{Type: models.LineItemPart, Catalog: filter.ID, Quantity: 3, UnitPrice: 12},
			{Type: models.LineItemPart, Catalog: models.CatalogOptional, Quantity: 4, UnitPrice: 1},
		}
		wo, err := p.Create(ctx, draft)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		result, err := p.Complete(ctx, wo.ID)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if len(result.Deductions) != 2 {
			t.Fatalf("expected 2 deductions, got %d", len(result.Deductions))
		}

		gotPads, _ := store.GetInventoryItem(ctx, pads.ID)
		if gotPads.QuantityOnHand != 0 {
			t.Errorf("pads QuantityOnHand = %v, want 0", gotPads.QuantityOnHand)
		}
		gotFilter, _ := store.GetInventoryItem(ctx, filter.ID)
		if gotFilter.QuantityOnHand != 7 {
			t.Errorf("filter QuantityOnHand = %v, want 7", gotFilter.QuantityOnHand)
		}

		stored, _ := store.GetWorkOrder(ctx, wo.ID)
		if !stored.IsCompleted() {
			t.Errorf("Status = %s, want Completed", stored.Status)
		}
		if stored.CompletedDate != fixedNow.Unix() {
			t.Errorf("CompletedDate = %d, want %d", stored.CompletedDate, fixedNow.Unix())
		}
	})

	t.Run("completing twice is a no-op", func(t *testing.T) {
		p, store := setupProcessor(t)

		item := &models.InventoryItem{Name: "Oil", QuantityOnHand: 10}
		if err := store.CreateInventoryItem(ctx, item); err != nil {
			t.Fatalf("CreateInventoryItem failed: %v", err)
		}
		draft := validDraft()
		draft.LineItems = []models.LineItemInput{
			{Type: models.LineItemPart, Catalog: item.ID, Quantity: 4, UnitPrice: 9},
		}
		wo, err := p.Create(ctx, draft)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := p.Complete(ctx, wo.ID); err != nil {
			t.Fatalf("first Complete failed: %v", err)
		}
		second, err := p.Complete(ctx, wo.ID)
		if err != nil {
			t.Fatalf("second Complete failed: %v", err)
		}
		if !second.AlreadyCompleted || len(second.Deductions) != 0 {
			t.Errorf("expected no-op on second completion, got %+v", second)
		}

		got, _ := store.GetInventoryItem(ctx, item.ID)
		if got.QuantityOnHand != 6 {
			t.Errorf("QuantityOnHand = %v, want 6 (deducted once)", got.QuantityOnHand)
		}
	})

	t.Run("missing inventory item is skipped", func(t *testing.T) {
		p, store := setupProcessor(t)

		item := &models.InventoryItem{Name: "Belt", QuantityOnHand: 2}
		if err := store.CreateInventoryItem(ctx, item); err != nil {
			t.Fatalf("CreateInventoryItem failed: %v", err)
		}
		draft := validDraft()
		draft.LineItems = []models.LineItemInput{
			{Type: models.LineItemPart, Catalog: "deleted-item", Quantity: 1, UnitPrice: 5},
			{Type: models.LineItemPart, Catalog: item.ID, Quantity: 1, UnitPrice: 30},
		}
		wo, err := p.Create(ctx, draft)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		result, err := p.Complete(ctx, wo.ID)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if len(result.Skipped) != 1 || result.Skipped[0] != "deleted-item" {
			t.Errorf("Skipped = %v, want [deleted-item]", result.Skipped)
		}
		got, _ := store.GetInventoryItem(ctx, item.ID)
		if got.QuantityOnHand != 1 {
			t.Errorf("QuantityOnHand = %v, want 1", got.QuantityOnHand)
		}
		if !result.Order.IsCompleted() {
			t.Error("expected order to complete despite skipped line")
		}
	})

	t.Run("missing work order", func(t *testing.T) {
		p, _ := setupProcessor(t)

		if _, err := p.Complete(ctx, "nonexistent"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Complete error = %v, want ErrNotFound", err)
		}
	})
}

func TestProcessorEditAndDelete(t *testing.T) {
	ctx := context.Background()
	p, store := setupProcessor(t)

	wo, err := p.Create(ctx, validDraft())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	edited, err := p.Edit(ctx, wo.ID, &models.WorkOrderEdit{
		Description: "Full service",
		Financials:  models.FinancialsInput{AmountReceived: 40},
		LineItems: []models.LineItemInput{
			{Type: models.LineItemService, Quantity: 2, UnitPrice: 30},
		},
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if edited.TotalAmount != 60 || edited.OutstandingBalance != 20 {
		t.Errorf("totals = %v/%v, want 60/20", edited.TotalAmount, edited.OutstandingBalance)
	}

	stored, _ := store.GetWorkOrder(ctx, wo.ID)
	if len(stored.LineItems) != 1 || stored.Description != "Full service" {
		t.Errorf("edit not persisted: %+v", stored)
	}

	if _, err := p.Edit(ctx, "nonexistent", &models.WorkOrderEdit{Description: "x"}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Edit error = %v, want ErrNotFound", err)
	}

	if err := p.Delete(ctx, wo.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := p.Delete(ctx, wo.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}
