package models

import "github.com/mmynk/garagedesk/internal/money"

// WorkOrderStatus is the lifecycle state of a work order.
type WorkOrderStatus string

const (
	StatusPending   WorkOrderStatus = "Pending"
	StatusCompleted WorkOrderStatus = "Completed"
)

// LineItemType distinguishes labour from inventory-backed parts.
type LineItemType string

const (
	LineItemService LineItemType = "Service"
	LineItemPart    LineItemType = "Part"
)

// CatalogOptional marks a line item that is not linked to the service
// catalog or to inventory.
const CatalogOptional = "Optional"

// LineItem is one billable row on a work order.
type LineItem struct {
	Type LineItemType `json:"type"`

	// Catalog is either CatalogOptional or the ID of a ServiceItem (for
	// services) or an InventoryItem (for parts).
	Catalog   string  `json:"catalog"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// LinksInventory reports whether completing the order should deduct stock
// for this line.
func (li LineItem) LinksInventory() bool {
	return li.Type == LineItemPart && li.Catalog != "" && li.Catalog != CatalogOptional
}

// WorkOrder is a unit of vehicle service work.
type WorkOrder struct {
	ID string `json:"id"`

	// CustomerID may be empty for orders that only ever captured the
	// customer inline; the Temp* snapshot fields substitute in that case.
	CustomerID        string   `json:"customerId,omitempty"`
	TempCustomerName  string   `json:"tempCustomerName,omitempty"`
	TempCustomerPhone string   `json:"tempCustomerPhone,omitempty"`
	TempVehicle       *Vehicle `json:"tempVehicle,omitempty"`

	Description   string          `json:"description"`
	Status        WorkOrderStatus `json:"status"`
	Arrival       int64           `json:"arrival"`
	Scheduled     int64           `json:"scheduled,omitempty"`
	WorkerID      string          `json:"workerId,omitempty"`
	InternalNotes string          `json:"internalNotes,omitempty"`
	LineItems     []LineItem      `json:"lineItems"`

	LabourCost         float64 `json:"labourCost"`
	PartsCost          float64 `json:"partsCost"`
	ParkingCharge      float64 `json:"parkingCharge"`
	Taxes              float64 `json:"taxes"`
	VAT                float64 `json:"vat"`
	Discount           float64 `json:"discount"`
	AmountReceived     float64 `json:"amountReceived"`
	TotalAmount        float64 `json:"totalAmount"`
	OutstandingBalance float64 `json:"outstandingBalance"`

	CreatedAt     int64 `json:"createdAt"`
	QuotedAt      int64 `json:"quotedAt"`
	CompletedDate int64 `json:"completedDate,omitempty"`
}

// IsCompleted reports whether the order reached its terminal state.
func (wo *WorkOrder) IsCompleted() bool {
	return wo.Status == StatusCompleted
}

// EffectiveDate is the completion date, or the creation date for orders
// that have not been completed.
func (wo *WorkOrder) EffectiveDate() int64 {
	if wo.CompletedDate != 0 {
		return wo.CompletedDate
	}
	return wo.CreatedAt
}

// CustomerDraft is the customer section of the create form.
type CustomerDraft struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// JobDraft is the job section of the create form.
type JobDraft struct {
	Description   string `json:"description" validate:"required"`
	Arrival       int64  `json:"arrival" validate:"required,gt=0"`
	Scheduled     int64  `json:"scheduled,omitempty"`
	WorkerID      string `json:"workerId,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty"`
}

// FinancialsInput holds the free-form money fields of the form. Every field
// goes through money.Normalize, so blank or malformed entries count as 0.
type FinancialsInput struct {
	Parking        money.Amount `json:"parking"`
	Taxes          money.Amount `json:"taxes"`
	VAT            money.Amount `json:"vat"`
	Discount       money.Amount `json:"discount"`
	AmountReceived money.Amount `json:"amountReceived"`
}

// LineItemInput is one row of the line item editor.
type LineItemInput struct {
	Type      LineItemType `json:"type" validate:"required,oneof=Service Part"`
	Catalog   string       `json:"catalog"`
	Name      string       `json:"name"`
	Quantity  money.Amount `json:"quantity" validate:"gte=0"`
	UnitPrice money.Amount `json:"unitPrice" validate:"gte=0"`
}

// WorkOrderDraft is the full create-work-order form.
type WorkOrderDraft struct {
	// CustomerID reuses an existing customer instead of creating one.
	CustomerID string          `json:"customerId,omitempty"`
	Customer   CustomerDraft   `json:"customer"`
	Vehicle    Vehicle         `json:"vehicle"`
	Job        JobDraft        `json:"job"`
	Financials FinancialsInput `json:"financials"`
	LineItems  []LineItemInput `json:"lineItems" validate:"dive"`
}

// WorkOrderEdit is the edit form. Financial fields are always re-derived from
// LineItems and Financials.
type WorkOrderEdit struct {
	Description   string          `json:"description" validate:"required"`
	Scheduled     int64           `json:"scheduled,omitempty"`
	WorkerID      string          `json:"workerId,omitempty"`
	InternalNotes string          `json:"internalNotes,omitempty"`
	Financials    FinancialsInput `json:"financials"`
	LineItems     []LineItemInput `json:"lineItems" validate:"dive"`
}
