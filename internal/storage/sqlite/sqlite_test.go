package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "garagedesk-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCustomers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateCustomer generates ID and timestamp", func(t *testing.T) {
		c := &models.Customer{
			Name:    "Alice",
			Phone:   "555-0100",
			Vehicle: models.Vehicle{Make: "Toyota", Model: "Corolla", Year: "2018"},
		}
		if err := store.CreateCustomer(ctx, c); err != nil {
			t.Fatalf("CreateCustomer failed: %v", err)
		}
		if c.ID == "" {
			t.Error("Expected customer ID to be generated")
		}
		if c.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetCustomer(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetCustomer failed: %v", err)
		}
		if got.Name != "Alice" || got.Vehicle.Model != "Corolla" || got.Vehicle.Year != "2018" {
			t.Errorf("Unexpected customer: %+v", got)
		}
	})

	t.Run("UpdateCustomer persists billing ledger", func(t *testing.T) {
		c := &models.Customer{Name: "Bob"}
		if err := store.CreateCustomer(ctx, c); err != nil {
			t.Fatalf("CreateCustomer failed: %v", err)
		}
		c.TotalBilled = 200
		c.PaidAmount = 50
		c.OutstandingBalance = 150
		if err := store.UpdateCustomer(ctx, c); err != nil {
			t.Fatalf("UpdateCustomer failed: %v", err)
		}

		got, err := store.GetCustomer(ctx, c.ID)
		if err != nil {
			t.Fatalf("GetCustomer failed: %v", err)
		}
		if got.OutstandingBalance != 150 || got.TotalBilled != 200 {
			t.Errorf("Billing not persisted: %+v", got)
		}
	})

	t.Run("missing customer maps to ErrNotFound", func(t *testing.T) {
		if _, err := store.GetCustomer(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetCustomer error = %v, want ErrNotFound", err)
		}
		err := store.UpdateCustomer(ctx, &models.Customer{ID: "nonexistent-id", Name: "X"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateCustomer error = %v, want ErrNotFound", err)
		}
		if err := store.DeleteCustomer(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteCustomer error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListCustomers returns all", func(t *testing.T) {
		list, err := store.ListCustomers(ctx)
		if err != nil {
			t.Fatalf("ListCustomers failed: %v", err)
		}
		if len(list) != 2 {
			t.Errorf("Expected 2 customers, got %d", len(list))
		}
	})
}

func TestWorkOrders(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	newOrder := func() *models.WorkOrder {
		return &models.WorkOrder{
			TempCustomerName: "Alice",
			TempVehicle:      &models.Vehicle{Make: "Honda", Model: "Civic", Plate: "ABC-123"},
			Description:      "Brake pads",
			Arrival:          1700000000,
			LineItems: []models.LineItem{
				{Type: models.LineItemService, Catalog: models.CatalogOptional, Name: "Labour", Quantity: 1, UnitPrice: 100},
				{Type: models.LineItemPart, Catalog: "inv-1", Name: "Pad", Quantity: 2, UnitPrice: 25},
				{Type: models.LineItemPart, Name: "Bolt", Quantity: 4, UnitPrice: 1},
			},
			LabourCost:  100,
			PartsCost:   54,
			TotalAmount: 154,
		}
	}

	t.Run("CreateWorkOrder round-trips line items and vehicle snapshot", func(t *testing.T) {
		wo := newOrder()
		if err := store.CreateWorkOrder(ctx, wo); err != nil {
			t.Fatalf("CreateWorkOrder failed: %v", err)
		}
		if wo.Status != models.StatusPending {
			t.Errorf("Expected status Pending, got %s", wo.Status)
		}

		got, err := store.GetWorkOrder(ctx, wo.ID)
		if err != nil {
			t.Fatalf("GetWorkOrder failed: %v", err)
		}
		if len(got.LineItems) != 3 {
			t.Fatalf("Expected 3 line items, got %d", len(got.LineItems))
		}
		if got.LineItems[1].Catalog != "inv-1" || got.LineItems[1].Quantity != 2 {
			t.Errorf("Line item order or content changed: %+v", got.LineItems[1])
		}
		if got.LineItems[2].Catalog != models.CatalogOptional {
			t.Errorf("Expected empty catalog stored as Optional, got %q", got.LineItems[2].Catalog)
		}
		if got.TempVehicle == nil || got.TempVehicle.Plate != "ABC-123" {
			t.Errorf("Vehicle snapshot not restored: %+v", got.TempVehicle)
		}
		if got.TotalAmount != 154 {
			t.Errorf("TotalAmount = %v, want 154", got.TotalAmount)
		}
	})

	t.Run("UpdateWorkOrder replaces line items", func(t *testing.T) {
		wo := newOrder()
		if err := store.CreateWorkOrder(ctx, wo); err != nil {
			t.Fatalf("CreateWorkOrder failed: %v", err)
		}
		wo.LineItems = wo.LineItems[:1]
		wo.Status = models.StatusCompleted
		wo.CompletedDate = 1700000500
		if err := store.UpdateWorkOrder(ctx, wo); err != nil {
			t.Fatalf("UpdateWorkOrder failed: %v", err)
		}

		got, err := store.GetWorkOrder(ctx, wo.ID)
		if err != nil {
			t.Fatalf("GetWorkOrder failed: %v", err)
		}
		if len(got.LineItems) != 1 {
			t.Errorf("Expected 1 line item after update, got %d", len(got.LineItems))
		}
		if !got.IsCompleted() || got.CompletedDate != 1700000500 {
			t.Errorf("Completion not persisted: %+v", got)
		}
	})

	t.Run("order without vehicle snapshot", func(t *testing.T) {
		wo := &models.WorkOrder{Description: "Oil change", LineItems: []models.LineItem{}}
		if err := store.CreateWorkOrder(ctx, wo); err != nil {
			t.Fatalf("CreateWorkOrder failed: %v", err)
		}
		got, err := store.GetWorkOrder(ctx, wo.ID)
		if err != nil {
			t.Fatalf("GetWorkOrder failed: %v", err)
		}
		if got.TempVehicle != nil {
			t.Errorf("Expected nil vehicle, got %+v", got.TempVehicle)
		}
		if got.LineItems == nil {
			t.Error("Expected empty, non-nil line items")
		}
	})

	t.Run("ListWorkOrders attaches line items", func(t *testing.T) {
		list, err := store.ListWorkOrders(ctx)
		if err != nil {
			t.Fatalf("ListWorkOrders failed: %v", err)
		}
		if len(list) != 3 {
			t.Fatalf("Expected 3 work orders, got %d", len(list))
		}
		total := 0
		for _, wo := range list {
			total += len(wo.LineItems)
		}
		if total != 4 {
			t.Errorf("Expected 4 line items across orders, got %d", total)
		}
	})

	t.Run("DeleteWorkOrder cascades line items", func(t *testing.T) {
		wo := newOrder()
		if err := store.CreateWorkOrder(ctx, wo); err != nil {
			t.Fatalf("CreateWorkOrder failed: %v", err)
		}
		if err := store.DeleteWorkOrder(ctx, wo.ID); err != nil {
			t.Fatalf("DeleteWorkOrder failed: %v", err)
		}
		if _, err := store.GetWorkOrder(ctx, wo.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetWorkOrder error = %v, want ErrNotFound", err)
		}

		var n int
		if err := store.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM work_order_line_items WHERE work_order_id = ?", wo.ID).Scan(&n); err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if n != 0 {
			t.Errorf("Expected line items to cascade, %d remain", n)
		}
	})
}

func TestInventoryAndCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateInventoryItem generates SKU", func(t *testing.T) {
		item := &models.InventoryItem{Name: "Oil filter", QuantityOnHand: 10, UnitCost: 4}
		if err := store.CreateInventoryItem(ctx, item); err != nil {
			t.Fatalf("CreateInventoryItem failed: %v", err)
		}
		if !strings.HasPrefix(item.SKU, "SKU-") {
			t.Errorf("Expected generated SKU, got %q", item.SKU)
		}
	})

	t.Run("CreateInventoryItem keeps explicit SKU", func(t *testing.T) {
		item := &models.InventoryItem{Name: "Brake pad", SKU: "BP-1", QuantityOnHand: 3}
		if err := store.CreateInventoryItem(ctx, item); err != nil {
			t.Fatalf("CreateInventoryItem failed: %v", err)
		}
		item.QuantityOnHand = 1
		if err := store.UpdateInventoryItem(ctx, item); err != nil {
			t.Fatalf("UpdateInventoryItem failed: %v", err)
		}
		got, err := store.GetInventoryItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetInventoryItem failed: %v", err)
		}
		if got.SKU != "BP-1" || got.QuantityOnHand != 1 {
			t.Errorf("Unexpected item: %+v", got)
		}
	})

	t.Run("service item CRUD", func(t *testing.T) {
		item := &models.ServiceItem{Name: "Wheel alignment", DefaultPrice: 60}
		if err := store.CreateServiceItem(ctx, item); err != nil {
			t.Fatalf("CreateServiceItem failed: %v", err)
		}
		item.DefaultPrice = 65
		if err := store.UpdateServiceItem(ctx, item); err != nil {
			t.Fatalf("UpdateServiceItem failed: %v", err)
		}
		got, err := store.GetServiceItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetServiceItem failed: %v", err)
		}
		if got.DefaultPrice != 65 {
			t.Errorf("DefaultPrice = %v, want 65", got.DefaultPrice)
		}
		if err := store.DeleteServiceItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteServiceItem failed: %v", err)
		}
		list, err := store.ListServiceItems(ctx)
		if err != nil {
			t.Fatalf("ListServiceItems failed: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("Expected empty catalog, got %d", len(list))
		}
	})
}

func TestWorkersAndSpendings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	w := &models.Worker{Name: "Sam", SalaryAmount: 1000}
	if err := store.CreateWorker(ctx, w); err != nil {
		t.Fatalf("CreateWorker failed: %v", err)
	}
	if w.SalaryFrequency != models.SalaryMonthly || w.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("Unexpected defaults: %+v", w)
	}

	w.PaymentStatus = models.PaymentPaid
	w.LastPaid = 1700000000
	if err := store.UpdateWorker(ctx, w); err != nil {
		t.Fatalf("UpdateWorker failed: %v", err)
	}
	got, err := store.GetWorker(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWorker failed: %v", err)
	}
	if got.PaymentStatus != models.PaymentPaid || got.LastPaid != 1700000000 {
		t.Errorf("Payment not persisted: %+v", got)
	}

	sp := &models.Spending{Category: "Rent", Amount: 500}
	if err := store.CreateSpending(ctx, sp); err != nil {
		t.Fatalf("CreateSpending failed: %v", err)
	}
	if sp.Date == 0 {
		t.Error("Expected Date to default to now")
	}
	list, err := store.ListSpendings(ctx)
	if err != nil {
		t.Fatalf("ListSpendings failed: %v", err)
	}
	if len(list) != 1 || list[0].Amount != 500 {
		t.Errorf("Unexpected spendings: %+v", list)
	}
	if err := store.DeleteSpending(ctx, sp.ID); err != nil {
		t.Fatalf("DeleteSpending failed: %v", err)
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("owner@garage.test", "Owner", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "owner@garage.test")
	if err != nil || got == nil {
		t.Fatalf("GetUserByEmail = %v, %v", got, err)
	}
	if got.PasswordHash != "hash" {
		t.Errorf("PasswordHash = %q", got.PasswordHash)
	}

	missing, err := store.GetUserByEmail(ctx, "nobody@garage.test")
	if err != nil || missing != nil {
		t.Errorf("Expected nil user and nil error, got %v, %v", missing, err)
	}

	if _, err := store.GetUserByID(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetUserByID error = %v, want ErrNotFound", err)
	}

	if err := store.CreateUser(ctx, models.NewUser("owner@garage.test", "Dup", "hash")); err == nil {
		t.Error("Expected duplicate email to fail")
	}
}

func TestWithinTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithinTx(ctx, func(tx storage.Store) error {
			if err := tx.CreateCustomer(ctx, &models.Customer{Name: "Ghost"}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("WithinTx error = %v, want boom", err)
		}
		list, err := store.ListCustomers(ctx)
		if err != nil {
			t.Fatalf("ListCustomers failed: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("Expected rollback, found %d customers", len(list))
		}
	})

	t.Run("commits and nests", func(t *testing.T) {
		err := store.WithinTx(ctx, func(tx storage.Store) error {
			if err := tx.CreateCustomer(ctx, &models.Customer{Name: "Kept"}); err != nil {
				return err
			}
			// Work order creation runs its own atomic block inside the outer tx.
			return tx.CreateWorkOrder(ctx, &models.WorkOrder{
				Description: "Nested",
				LineItems:   []models.LineItem{{Type: models.LineItemService, Quantity: 1, UnitPrice: 10}},
			})
		})
		if err != nil {
			t.Fatalf("WithinTx failed: %v", err)
		}
		customers, _ := store.ListCustomers(ctx)
		orders, _ := store.ListWorkOrders(ctx)
		if len(customers) != 1 || len(orders) != 1 {
			t.Errorf("Expected 1 customer and 1 order, got %d and %d", len(customers), len(orders))
		}
	})
}
