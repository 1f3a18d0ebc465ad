package workorder

import (
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

const notAvailable = "N/A"

// InvoiceLine is a priced row of an invoice.
type InvoiceLine struct {
	Type      models.LineItemType `json:"type"`
	Name      string              `json:"name"`
	Quantity  float64             `json:"quantity"`
	UnitPrice float64             `json:"unitPrice"`
	Total     float64             `json:"total"`
}

// Invoice is the printable, fully resolved view of a work order.
type Invoice struct {
	WorkOrderID   string                 `json:"workOrderId"`
	Status        models.WorkOrderStatus `json:"status"`
	IssuedAt      int64                  `json:"issuedAt"`
	CustomerName  string                 `json:"customerName"`
	CustomerPhone string                 `json:"customerPhone"`
	Vehicle       models.Vehicle         `json:"vehicle"`
	Description   string                 `json:"description"`
	Lines         []InvoiceLine          `json:"lines"`

	Subtotal       float64 `json:"subtotal"`
	Parking        float64 `json:"parking"`
	Taxes          float64 `json:"taxes"`
	VAT            float64 `json:"vat"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	AmountReceived float64 `json:"amountReceived"`
	Balance        float64 `json:"balance"`
}

// NewInvoice resolves an order against its customer, which may be nil when
// the customer record is gone. Customer details fall back to the order's
// snapshot, then to "N/A".
func NewInvoice(wo *models.WorkOrder, customer *models.Customer) *Invoice {
	inv := &Invoice{
		WorkOrderID:    wo.ID,
		Status:         wo.Status,
		IssuedAt:       wo.EffectiveDate(),
		CustomerName:   firstNonEmpty(customerField(customer, func(c *models.Customer) string { return c.Name }), wo.TempCustomerName),
		CustomerPhone:  firstNonEmpty(customerField(customer, func(c *models.Customer) string { return c.Phone }), wo.TempCustomerPhone),
		Description:    wo.Description,
		Lines:          make([]InvoiceLine, 0, len(wo.LineItems)),
		Parking:        wo.ParkingCharge,
		Taxes:          wo.Taxes,
		VAT:            wo.VAT,
		Discount:       wo.Discount,
		AmountReceived: wo.AmountReceived,
	}

	// Prefer the vehicle as captured on the order.
	switch {
	case wo.TempVehicle != nil:
		inv.Vehicle = *wo.TempVehicle
	case customer != nil:
		inv.Vehicle = customer.Vehicle
	}

	for _, li := range wo.LineItems {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Type:      li.Type,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Total:     money.Mul(li.Quantity, li.UnitPrice),
		})
	}

	totals := Totals(wo.LineItems, models.FinancialsInput{
		Parking:        money.Amount(wo.ParkingCharge),
		Taxes:          money.Amount(wo.Taxes),
		VAT:            money.Amount(wo.VAT),
		Discount:       money.Amount(wo.Discount),
		AmountReceived: money.Amount(wo.AmountReceived),
	})
	inv.Subtotal = totals.Subtotal
	inv.Total = totals.TotalAmount
	inv.Balance = totals.OutstandingBalance
	return inv
}

func customerField(c *models.Customer, get func(*models.Customer) string) string {
	if c == nil {
		return ""
	}
	return get(c)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return notAvailable
}
