// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/garagedesk/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no record.
var ErrNotFound = errors.New("not found")

// Store defines the persistence contract for every collection.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Create methods assign ID and CreatedAt when they are unset. List methods
// return the full collection; filtering and sorting happen in the caller.
type Store interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error

	// CreateWorkOrder persists the order together with its line items.
	CreateWorkOrder(ctx context.Context, order *models.WorkOrder) error
	GetWorkOrder(ctx context.Context, id string) (*models.WorkOrder, error)
	ListWorkOrders(ctx context.Context) ([]*models.WorkOrder, error)
	// UpdateWorkOrder replaces the order and its line items.
	UpdateWorkOrder(ctx context.Context, order *models.WorkOrder) error
	DeleteWorkOrder(ctx context.Context, id string) error

	// CreateInventoryItem generates a SKU when none is set.
	CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error
	GetInventoryItem(ctx context.Context, id string) (*models.InventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]*models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item *models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, id string) error

	CreateServiceItem(ctx context.Context, item *models.ServiceItem) error
	GetServiceItem(ctx context.Context, id string) (*models.ServiceItem, error)
	ListServiceItems(ctx context.Context) ([]*models.ServiceItem, error)
	UpdateServiceItem(ctx context.Context, item *models.ServiceItem) error
	DeleteServiceItem(ctx context.Context, id string) error

	CreateWorker(ctx context.Context, worker *models.Worker) error
	GetWorker(ctx context.Context, id string) (*models.Worker, error)
	ListWorkers(ctx context.Context) ([]*models.Worker, error)
	UpdateWorker(ctx context.Context, worker *models.Worker) error
	DeleteWorker(ctx context.Context, id string) error

	CreateSpending(ctx context.Context, spending *models.Spending) error
	ListSpendings(ctx context.Context) ([]*models.Spending, error)
	DeleteSpending(ctx context.Context, id string) error

	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// WithinTx runs fn against a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	// Calling WithinTx on a transaction-bound store reuses the transaction.
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	// Close releases any resources held by the store.
	Close() error
}
