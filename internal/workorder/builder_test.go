package workorder

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
	"github.com/mmynk/garagedesk/internal/validate"
)

func validDraft() *models.WorkOrderDraft {
	return &models.WorkOrderDraft{
		Customer: models.CustomerDraft{Name: "Alice", Phone: "555-0100"},
		Vehicle:  models.Vehicle{VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord"},
		Job:      models.JobDraft{Description: "Brake service", Arrival: 1700000000},
		Financials: models.FinancialsInput{
			Parking:        10,
			Taxes:          5,
			VAT:            8,
			Discount:       0,
			AmountReceived: 100,
		},
		LineItems: []models.LineItemInput{
			{Type: models.LineItemService, Name: "Labour", Quantity: 1, UnitPrice: 100},
			{Type: models.LineItemPart, Catalog: "inv-1", Name: "Pads", Quantity: 2, UnitPrice: 25},
		},
	}
}

func TestBuild(t *testing.T) {
	now := time.Unix(1700000100, 0)

	tests := []struct {
		name         string
		draft        func() *models.WorkOrderDraft
		wantErr      bool
		validateFunc func(t *testing.T, wo *models.WorkOrder)
	}{
		{
			name:  "splits labour and parts",
			draft: validDraft,
			validateFunc: func(t *testing.T, wo *models.WorkOrder) {
				if wo.LabourCost != 100 {
					t.Errorf("LabourCost = %v, want 100", wo.LabourCost)
				}
				if wo.PartsCost != 50 {
					t.Errorf("PartsCost = %v, want 50", wo.PartsCost)
				}
				if wo.TotalAmount != 173 {
					t.Errorf("TotalAmount = %v, want 173", wo.TotalAmount)
				}
				if wo.OutstandingBalance != 73 {
					t.Errorf("OutstandingBalance = %v, want 73", wo.OutstandingBalance)
				}
				if wo.Status != models.StatusPending {
					t.Errorf("Status = %s, want Pending", wo.Status)
				}
				if wo.CreatedAt != now.Unix() || wo.QuotedAt != now.Unix() {
					t.Errorf("timestamps = %d/%d, want %d", wo.CreatedAt, wo.QuotedAt, now.Unix())
				}
				if wo.CustomerID != "cust-1" {
					t.Errorf("CustomerID = %q, want cust-1", wo.CustomerID)
				}
				if wo.TempCustomerName != "Alice" || wo.TempVehicle == nil || wo.TempVehicle.Make != "Honda" {
					t.Errorf("snapshot not kept: %+v", wo)
				}
			},
		},
		{
			name: "empty line items default to one service row",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.LineItems = nil
				return d
			},
			validateFunc: func(t *testing.T, wo *models.WorkOrder) {
				if len(wo.LineItems) != 1 {
					t.Fatalf("expected 1 default line item, got %d", len(wo.LineItems))
				}
				li := wo.LineItems[0]
				if li.Type != models.LineItemService || li.Catalog != models.CatalogOptional {
					t.Errorf("unexpected default line item: %+v", li)
				}
				if wo.LabourCost != 0 || wo.PartsCost != 0 {
					t.Errorf("expected zero costs, got %v/%v", wo.LabourCost, wo.PartsCost)
				}
			},
		},
		{
			name: "blank catalog becomes Optional",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.LineItems[1].Catalog = "  "
				return d
			},
			validateFunc: func(t *testing.T, wo *models.WorkOrder) {
				if wo.LineItems[1].Catalog != models.CatalogOptional {
					t.Errorf("Catalog = %q, want Optional", wo.LineItems[1].Catalog)
				}
			},
		},
		{
			name: "missing customer phone",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.Customer.Phone = ""
				return d
			},
			wantErr: true,
		},
		{
			name: "missing vehicle VIN",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.Vehicle.VIN = ""
				return d
			},
			wantErr: true,
		},
		{
			name: "missing arrival",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.Job.Arrival = 0
				return d
			},
			wantErr: true,
		},
		{
			name: "unknown line item type",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.LineItems[0].Type = "Fee"
				return d
			},
			wantErr: true,
		},
		{
			name: "negative quantity",
			draft: func() *models.WorkOrderDraft {
				d := validDraft()
				d.LineItems[0].Quantity = -1
				return d
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wo, err := Build(tt.draft(), "cust-1", now)
			if tt.wantErr {
				var verr *validate.Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected validate.Error, got %v", err)
				}
				if len(verr.Fields) == 0 {
					t.Error("expected failing fields to be reported")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, wo)
			}
		})
	}
}

func TestApplyEdit(t *testing.T) {
	wo, err := Build(validDraft(), "cust-1", time.Unix(1700000100, 0))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	edit := &models.WorkOrderEdit{
		Description: "Brake service and oil",
		WorkerID:    "worker-1",
		Financials:  models.FinancialsInput{Discount: money.Amount(500)},
		LineItems: []models.LineItemInput{
			{Type: models.LineItemService, Quantity: 2, UnitPrice: 50},
		},
	}
	if err := ApplyEdit(wo, edit); err != nil {
		t.Fatalf("ApplyEdit failed: %v", err)
	}

	if wo.Description != "Brake service and oil" || wo.WorkerID != "worker-1" {
		t.Errorf("job fields not applied: %+v", wo)
	}
	if wo.PartsCost != 0 || wo.LabourCost != 100 {
		t.Errorf("costs = %v/%v, want 100/0", wo.LabourCost, wo.PartsCost)
	}
	// Discount larger than gross leaves a negative total and no balance.
	if wo.TotalAmount != -400 {
		t.Errorf("TotalAmount = %v, want -400", wo.TotalAmount)
	}
	if wo.OutstandingBalance != 0 {
		t.Errorf("OutstandingBalance = %v, want 0", wo.OutstandingBalance)
	}

	if err := ApplyEdit(wo, &models.WorkOrderEdit{}); err == nil {
		t.Error("expected blank description to be rejected")
	}
}
