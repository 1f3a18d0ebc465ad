// Package workorder turns submitted forms into persisted work orders and
// drives their lifecycle from Pending to Completed.
package workorder

import (
	"strings"
	"time"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/validate"
)

// LineItems converts form rows into stored line items. An empty list becomes
// a single blank Service row, and a blank catalog becomes CatalogOptional.
func LineItems(in []models.LineItemInput) []models.LineItem {
	if len(in) == 0 {
		return []models.LineItem{{Type: models.LineItemService, Catalog: models.CatalogOptional}}
	}

	items := make([]models.LineItem, 0, len(in))
	for _, row := range in {
		catalog := strings.TrimSpace(row.Catalog)
		if catalog == "" {
			catalog = models.CatalogOptional
		}
		items = append(items, models.LineItem{
			Type:      row.Type,
			Catalog:   catalog,
			Name:      row.Name,
			Quantity:  row.Quantity.Float64(),
			UnitPrice: row.UnitPrice.Float64(),
		})
	}
	return items
}

// Totals runs the calculator over stored line items and form financials.
func Totals(items []models.LineItem, f models.FinancialsInput) calculator.Totals {
	calcItems := make([]calculator.Item, 0, len(items))
	for _, li := range items {
		calcItems = append(calcItems, calculator.Item{
			Kind:      string(li.Type),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}
	return calculator.Calculate(calcItems, calculator.Financials{
		Parking:        f.Parking.Float64(),
		Taxes:          f.Taxes.Float64(),
		VAT:            f.VAT.Float64(),
		Discount:       f.Discount.Float64(),
		AmountReceived: f.AmountReceived.Float64(),
	})
}

// NewCustomer builds the customer record a draft creates.
func NewCustomer(draft *models.WorkOrderDraft, now time.Time) *models.Customer {
	return &models.Customer{
		Name:      strings.TrimSpace(draft.Customer.Name),
		Phone:     strings.TrimSpace(draft.Customer.Phone),
		Email:     strings.TrimSpace(draft.Customer.Email),
		Vehicle:   draft.Vehicle,
		CreatedAt: now.Unix(),
	}
}

// Build validates a draft and flattens it into a Pending work order linked to
// customerID. The inline customer and vehicle are kept as a snapshot.
func Build(draft *models.WorkOrderDraft, customerID string, now time.Time) (*models.WorkOrder, error) {
	if err := validate.Struct(draft); err != nil {
		return nil, err
	}

	items := LineItems(draft.LineItems)
	totals := Totals(items, draft.Financials)
	vehicle := draft.Vehicle

	return &models.WorkOrder{
		CustomerID:        customerID,
		TempCustomerName:  strings.TrimSpace(draft.Customer.Name),
		TempCustomerPhone: strings.TrimSpace(draft.Customer.Phone),
		TempVehicle:       &vehicle,

		Description:   strings.TrimSpace(draft.Job.Description),
		Status:        models.StatusPending,
		Arrival:       draft.Job.Arrival,
		Scheduled:     draft.Job.Scheduled,
		WorkerID:      draft.Job.WorkerID,
		InternalNotes: draft.Job.InternalNotes,
		LineItems:     items,

		LabourCost:         totals.LabourCost,
		PartsCost:          totals.PartsCost,
		ParkingCharge:      draft.Financials.Parking.Float64(),
		Taxes:              draft.Financials.Taxes.Float64(),
		VAT:                draft.Financials.VAT.Float64(),
		Discount:           draft.Financials.Discount.Float64(),
		AmountReceived:     draft.Financials.AmountReceived.Float64(),
		TotalAmount:        totals.TotalAmount,
		OutstandingBalance: totals.OutstandingBalance,

		CreatedAt: now.Unix(),
		QuotedAt:  now.Unix(),
	}, nil
}

// ApplyEdit validates an edit form and applies it to wo, re-deriving every
// financial field. Status and completion date are left alone.
func ApplyEdit(wo *models.WorkOrder, edit *models.WorkOrderEdit) error {
	if err := validate.Struct(edit); err != nil {
		return err
	}

	items := LineItems(edit.LineItems)
	totals := Totals(items, edit.Financials)

	wo.Description = strings.TrimSpace(edit.Description)
	wo.Scheduled = edit.Scheduled
	wo.WorkerID = edit.WorkerID
	wo.InternalNotes = edit.InternalNotes
	wo.LineItems = items

	wo.LabourCost = totals.LabourCost
	wo.PartsCost = totals.PartsCost
	wo.ParkingCharge = edit.Financials.Parking.Float64()
	wo.Taxes = edit.Financials.Taxes.Float64()
	wo.VAT = edit.Financials.VAT.Float64()
	wo.Discount = edit.Financials.Discount.Float64()
	wo.AmountReceived = edit.Financials.AmountReceived.Float64()
	wo.TotalAmount = totals.TotalAmount
	wo.OutstandingBalance = totals.OutstandingBalance
	return nil
}
