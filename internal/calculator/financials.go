// Package calculator holds the pure money math of the garage: work order
// totals and the read-only rollups behind list views and dashboards.
package calculator

import "github.com/mmynk/garagedesk/internal/money"

// Line item kinds understood by the calculator.
const (
	KindService = "Service"
	KindPart    = "Part"
)

// Item is the minimal view of a line item needed for totals.
type Item struct {
	Kind      string
	Quantity  float64
	UnitPrice float64
}

// Amount returns quantity × unit price.
func (i Item) Amount() float64 {
	return money.Mul(i.Quantity, i.UnitPrice)
}

// Financials are the free-form money inputs of a work order.
type Financials struct {
	Parking        float64
	Taxes          float64
	VAT            float64
	Discount       float64
	AmountReceived float64
}

// Totals is the derived financial state of a work order.
type Totals struct {
	Subtotal           float64
	LabourCost         float64
	PartsCost          float64
	TotalAmount        float64
	OutstandingBalance float64
}

// Calculate derives the totals of a work order from its line items and
// financial inputs:
//
//	labour      = Σ qty×price over Service items
//	parts       = Σ qty×price over Part items
//	subtotal    = Σ qty×price over all items + parking
//	total       = labour + parts + parking + taxes + vat − discount
//	outstanding = max(0, total − received)
//
// total is not clamped and goes negative when the discount exceeds the gross.
func Calculate(items []Item, f Financials) Totals {
	var labour, parts, all []float64
	for _, item := range items {
		amount := item.Amount()
		all = append(all, amount)
		switch item.Kind {
		case KindService:
			labour = append(labour, amount)
		case KindPart:
			parts = append(parts, amount)
		}
	}

	t := Totals{
		LabourCost: money.Sum(labour...),
		PartsCost:  money.Sum(parts...),
		Subtotal:   money.Sum(append(all, f.Parking)...),
	}
	gross := money.Sum(t.LabourCost, t.PartsCost, f.Parking, f.Taxes, f.VAT)
	t.TotalAmount = money.Sub(gross, f.Discount)
	t.OutstandingBalance = Outstanding(t.TotalAmount, f.AmountReceived)
	return t
}

// Outstanding returns max(0, total − received).
func Outstanding(total, received float64) float64 {
	return money.Max0(money.Sub(total, received))
}
