package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/validate"
	"github.com/mmynk/garagedesk/pkg/api"
)

// CustomerService implements the Connect CustomerService.
type CustomerService struct {
	store storage.Store
}

// NewCustomerService creates a new CustomerService with the given storage backend.
func NewCustomerService(store storage.Store) *CustomerService {
	return &CustomerService{store: store}
}

// CreateCustomer adds a customer record outside of a work order.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error) {
	slog.Info("CreateCustomer request received", "name", req.Msg.Customer.Name)

	if err := validate.Struct(&req.Msg.Customer); err != nil {
		return nil, toConnectError("CreateCustomer", err)
	}

	customer := &models.Customer{}
	applyCustomerInput(customer, req.Msg.Customer)
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, toConnectError("CreateCustomer", err)
	}

	slog.Info("Customer created", "customer_id", customer.ID)
	return connect.NewResponse(&api.CreateCustomerResponse{Customer: customer}), nil
}

// ListCustomers returns every customer with their ledger balance and order
// count, optionally filtered by name, phone or plate.
func (s *CustomerService) ListCustomers(ctx context.Context, req *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error) {
	slog.Info("ListCustomers request received", "query", req.Msg.Query)

	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, toConnectError("ListCustomers", err)
	}
	orders, err := s.store.ListWorkOrders(ctx)
	if err != nil {
		return nil, toConnectError("ListCustomers", err)
	}

	counts := make(map[string]int)
	for _, wo := range orders {
		if wo.CustomerID != "" {
			counts[wo.CustomerID]++
		}
	}

	query := strings.ToLower(strings.TrimSpace(req.Msg.Query))
	summaries := []*api.CustomerSummary{}
	for _, c := range customers {
		if query != "" && !matchesCustomer(c, query) {
			continue
		}
		summaries = append(summaries, &api.CustomerSummary{
			Customer:       c,
			Balance:        calculator.CustomerOutstanding(c.TotalBilled, c.PaidAmount),
			WorkOrderCount: counts[c.ID],
		})
	}

	slog.Info("ListCustomers successful", "count", len(summaries))
	return connect.NewResponse(&api.ListCustomersResponse{Customers: summaries}), nil
}

// GetCustomer returns a customer together with their work orders, newest first.
func (s *CustomerService) GetCustomer(ctx context.Context, req *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error) {
	slog.Info("GetCustomer request received", "customer_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	customer, err := s.store.GetCustomer(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetCustomer", err, "customer_id", req.Msg.ID)
	}
	orders, err := s.store.ListWorkOrders(ctx)
	if err != nil {
		return nil, toConnectError("GetCustomer", err, "customer_id", req.Msg.ID)
	}

	theirs := []*models.WorkOrder{}
	for _, wo := range orders {
		if wo.CustomerID == customer.ID {
			theirs = append(theirs, wo)
		}
	}

	return connect.NewResponse(&api.GetCustomerResponse{
		Customer:   customer,
		Balance:    calculator.CustomerOutstanding(customer.TotalBilled, customer.PaidAmount),
		WorkOrders: theirs,
	}), nil
}

// UpdateCustomer overwrites the editable fields of a customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, req *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error) {
	slog.Info("UpdateCustomer request received", "customer_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validate.Struct(&req.Msg.Customer); err != nil {
		return nil, toConnectError("UpdateCustomer", err, "customer_id", req.Msg.ID)
	}

	var customer *models.Customer
	err := s.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		customer, err = tx.GetCustomer(ctx, req.Msg.ID)
		if err != nil {
			return err
		}
		applyCustomerInput(customer, req.Msg.Customer)
		return tx.UpdateCustomer(ctx, customer)
	})
	if err != nil {
		return nil, toConnectError("UpdateCustomer", err, "customer_id", req.Msg.ID)
	}

	slog.Info("Customer updated", "customer_id", customer.ID)
	return connect.NewResponse(&api.UpdateCustomerResponse{Customer: customer}), nil
}

// DeleteCustomer removes a customer. Their work orders keep the inline
// snapshot and stay listed.
func (s *CustomerService) DeleteCustomer(ctx context.Context, req *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error) {
	slog.Info("DeleteCustomer request received", "customer_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteCustomer(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteCustomer", err, "customer_id", req.Msg.ID)
	}

	slog.Info("Customer deleted", "customer_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteCustomerResponse{}), nil
}

func applyCustomerInput(c *models.Customer, in api.CustomerInput) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = strings.TrimSpace(in.Email)
	c.Notes = in.Notes
	c.Vehicle = in.Vehicle
	c.TotalBilled = in.TotalBilled.Float64()
	c.PaidAmount = in.PaidAmount.Float64()
	c.OutstandingBalance = calculator.CustomerOutstanding(c.TotalBilled, c.PaidAmount)
}

func matchesCustomer(c *models.Customer, query string) bool {
	for _, field := range []string{c.Name, c.Phone, c.Vehicle.Plate} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
