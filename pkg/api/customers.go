package api

import (
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

// CustomerInput is the customer form. The vehicle is optional here; it is
// only required when captured through a work order draft.
type CustomerInput struct {
	Name    string         `json:"name" validate:"required"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email,omitempty" validate:"omitempty,email"`
	Notes   string         `json:"notes,omitempty"`
	Vehicle models.Vehicle `json:"vehicle" validate:"-"`

	TotalBilled money.Amount `json:"totalBilled" validate:"gte=0"`
	PaidAmount  money.Amount `json:"paidAmount" validate:"gte=0"`
}

// CustomerSummary is a list row: the customer with derived figures.
type CustomerSummary struct {
	*models.Customer
	Balance        float64 `json:"balance"`
	WorkOrderCount int     `json:"workOrderCount"`
}

type CreateCustomerRequest struct {
	Customer CustomerInput `json:"customer"`
}

type CreateCustomerResponse struct {
	Customer *models.Customer `json:"customer"`
}

type ListCustomersRequest struct {
	// Query filters by a case-insensitive match on name, phone or plate.
	Query string `json:"query,omitempty"`
}

type ListCustomersResponse struct {
	Customers []*CustomerSummary `json:"customers"`
}

type GetCustomerRequest struct {
	ID string `json:"id"`
}

type GetCustomerResponse struct {
	Customer   *models.Customer    `json:"customer"`
	Balance    float64             `json:"balance"`
	WorkOrders []*models.WorkOrder `json:"workOrders"`
}

type UpdateCustomerRequest struct {
	ID       string        `json:"id"`
	Customer CustomerInput `json:"customer"`
}

type UpdateCustomerResponse struct {
	Customer *models.Customer `json:"customer"`
}

type DeleteCustomerRequest struct {
	ID string `json:"id"`
}

type DeleteCustomerResponse struct{}
