package models

// Vehicle is the car attached to a customer or snapshotted on a work order.
type Vehicle struct {
	VIN   string `json:"vin" validate:"required"`
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  string `json:"year,omitempty"`
	Color string `json:"color,omitempty"`
	Plate string `json:"plate,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Customer is a garage customer with one embedded vehicle.
//
// TotalBilled, PaidAmount and OutstandingBalance form an independent ledger.
// They are edited directly and are never reconciled against work orders.
type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email,omitempty"`
	Notes   string  `json:"notes,omitempty"`
	Vehicle Vehicle `json:"vehicle"`

	TotalBilled float64 `json:"totalBilled"`
	PaidAmount  float64 `json:"paidAmount"`

	// OutstandingBalance is stored redundantly; readers should prefer
	// calculator.CustomerOutstanding over this value.
	OutstandingBalance float64 `json:"outstandingBalance"`

	CreatedAt int64 `json:"createdAt"`
}

// HasVehicle reports whether any vehicle detail was captured.
func (c *Customer) HasVehicle() bool {
	return c.Vehicle.VIN != "" || c.Vehicle.Make != "" || c.Vehicle.Model != "" || c.Vehicle.Plate != ""
}
