package api

import (
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/workorder"
)

// PreviewTotalsRequest carries the in-progress form for a live totals preview.
type PreviewTotalsRequest struct {
	LineItems  []models.LineItemInput `json:"lineItems"`
	Financials models.FinancialsInput `json:"financials"`
}

type PreviewTotalsResponse struct {
	Subtotal           float64 `json:"subtotal"`
	LabourCost         float64 `json:"labourCost"`
	PartsCost          float64 `json:"partsCost"`
	TotalAmount        float64 `json:"totalAmount"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

type CreateWorkOrderRequest struct {
	models.WorkOrderDraft
}

type CreateWorkOrderResponse struct {
	WorkOrder *models.WorkOrder `json:"workOrder"`
}

// WorkOrderSummary is a list row with the customer name resolved.
type WorkOrderSummary struct {
	*models.WorkOrder
	CustomerName string `json:"customerName"`
}

type ListWorkOrdersRequest struct {
	// Status filters by lifecycle state; empty returns every order.
	Status     models.WorkOrderStatus `json:"status,omitempty"`
	CustomerID string                 `json:"customerId,omitempty"`
}

type ListWorkOrdersResponse struct {
	WorkOrders []*WorkOrderSummary `json:"workOrders"`
}

type GetWorkOrderRequest struct {
	ID string `json:"id"`
}

type GetWorkOrderResponse struct {
	WorkOrder    *models.WorkOrder `json:"workOrder"`
	CustomerName string            `json:"customerName"`
}

type UpdateWorkOrderRequest struct {
	ID string `json:"id"`
	models.WorkOrderEdit
}

type UpdateWorkOrderResponse struct {
	WorkOrder *models.WorkOrder `json:"workOrder"`
}

type CompleteWorkOrderRequest struct {
	ID string `json:"id"`
}

type CompleteWorkOrderResponse struct {
	Completion *workorder.Completion `json:"completion"`
}

type DeleteWorkOrderRequest struct {
	ID string `json:"id"`
}

type DeleteWorkOrderResponse struct{}

type GetInvoiceRequest struct {
	ID string `json:"id"`
}

type GetInvoiceResponse struct {
	Invoice *workorder.Invoice `json:"invoice"`
}

type ExportWorkOrdersRequest struct {
	Status models.WorkOrderStatus `json:"status,omitempty"`
}

// ExportWorkOrdersResponse carries an xlsx workbook; Data is base64 in JSON.
type ExportWorkOrdersResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}
