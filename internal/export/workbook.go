// Package export renders reports as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	workOrdersSheet = "Work Orders"
	dateLayout      = "2006-01-02"
)

var workOrderHeaders = []string{
	"Work Order ID", "Customer", "Vehicle", "Status", "Created", "Completed",
	"Labour", "Parts", "Parking", "Taxes", "VAT", "Discount",
	"Total", "Received", "Outstanding",
}

// Row is one work order with its customer name resolved.
type Row struct {
	WorkOrder    *models.WorkOrder
	CustomerName string
}

// WorkOrdersWorkbook writes one row per work order followed by a totals row
// and returns the encoded xlsx file.
func WorkOrdersWorkbook(rows []Row, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(workOrdersSheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error removing default sheet: %w", err)
	}

	if err := setRow(f, 1, toAny(workOrderHeaders)); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %w", err)
	}
	if err := f.SetRowStyle(workOrdersSheet, 1, 1, headerStyle); err != nil {
		return nil, fmt.Errorf("error styling header: %w", err)
	}

	var total, received, outstanding []float64
	for i, r := range rows {
		wo := r.WorkOrder
		values := []any{
			wo.ID,
			r.CustomerName,
			vehicleLabel(wo.TempVehicle),
			string(wo.Status),
			formatDate(wo.CreatedAt, loc),
			formatDate(wo.CompletedDate, loc),
			wo.LabourCost,
			wo.PartsCost,
			wo.ParkingCharge,
			wo.Taxes,
			wo.VAT,
			wo.Discount,
			wo.TotalAmount,
			wo.AmountReceived,
			wo.OutstandingBalance,
		}
		if err := setRow(f, i+2, values); err != nil {
			return nil, err
		}
		total = append(total, wo.TotalAmount)
		received = append(received, wo.AmountReceived)
		outstanding = append(outstanding, wo.OutstandingBalance)
	}

	totalsRow := make([]any, len(workOrderHeaders))
	totalsRow[0] = "Total"
	totalsRow[12] = money.Sum(total...)
	totalsRow[13] = money.Sum(received...)
	totalsRow[14] = money.Sum(outstanding...)
	if err := setRow(f, len(rows)+2, totalsRow); err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(workOrderHeaders))
	if err := f.SetColWidth(workOrdersSheet, "A", lastCol, 15); err != nil {
		return nil, fmt.Errorf("error sizing columns: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename names an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("work-orders-%s.xlsx", now.Format("20060102-150405"))
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(workOrdersSheet, cell, &values); err != nil {
		return fmt.Errorf("error writing row %d: %w", row, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func vehicleLabel(v *models.Vehicle) string {
	if v == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{v.Year, v.Make, v.Model} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	label := strings.Join(parts, " ")
	if v.Plate != "" {
		label = strings.TrimSpace(label + " (" + v.Plate + ")")
	}
	return label
}

func formatDate(unix int64, loc *time.Location) string {
	if unix == 0 {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(unix, 0).In(loc).Format(dateLayout)
}
