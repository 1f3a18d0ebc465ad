package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/garagedesk/internal/models"
)

func TestWorkOrdersWorkbook(t *testing.T) {
	rows := []Row{
		{
			WorkOrder: &models.WorkOrder{
				ID:                 "wo-1",
				Status:             models.StatusCompleted,
				TempVehicle:        &models.Vehicle{Year: "2018", Make: "Honda", Model: "Civic", Plate: "ABC-123"},
				TotalAmount:        173,
				AmountReceived:     100,
				OutstandingBalance: 73,
				CreatedAt:          time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC).Unix(),
				CompletedDate:      time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC).Unix(),
			},
			CustomerName: "Alice",
		},
		{
			WorkOrder:    &models.WorkOrder{ID: "wo-2", Status: models.StatusPending, TotalAmount: 27},
			CustomerName: "Bob",
		},
	}

	data, err := WorkOrdersWorkbook(rows, time.UTC)
	if err != nil {
		t.Fatalf("WorkOrdersWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(workOrdersSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected header, 2 rows and totals; got %d rows", len(got))
	}
	if got[0][0] != "Work Order ID" || got[0][14] != "Outstanding" {
		t.Errorf("unexpected header: %v", got[0])
	}
	if got[1][1] != "Alice" || got[1][2] != "2018 Honda Civic (ABC-123)" {
		t.Errorf("unexpected first row: %v", got[1])
	}
	if got[1][4] != "2026-05-01" || got[1][5] != "2026-05-03" {
		t.Errorf("unexpected dates: %v", got[1][4:6])
	}
	if got[3][0] != "Total" || got[3][12] != "200" {
		t.Errorf("unexpected totals row: %v", got[3])
	}

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != workOrdersSheet {
		t.Errorf("sheets = %v, want only %q", sheets, workOrdersSheet)
	}
}

func TestVehicleLabel(t *testing.T) {
	tests := []struct {
		name string
		in   *models.Vehicle
		want string
	}{
		{"nil", nil, ""},
		{"make and model", &models.Vehicle{Make: "Ford", Model: "Focus"}, "Ford Focus"},
		{"plate only", &models.Vehicle{Plate: "XYZ"}, "(XYZ)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vehicleLabel(tt.in); got != tt.want {
				t.Errorf("vehicleLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
