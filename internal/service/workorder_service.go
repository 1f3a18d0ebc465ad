package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/export"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/workorder"
	"github.com/mmynk/garagedesk/pkg/api"
)

// WorkOrderService implements the Connect WorkOrderService.
type WorkOrderService struct {
	store     storage.Store
	processor *workorder.Processor
	now       func() time.Time
}

// NewWorkOrderService creates a new WorkOrderService. Writes go through
// processor; reads go straight to store.
func NewWorkOrderService(store storage.Store, processor *workorder.Processor) *WorkOrderService {
	return &WorkOrderService{store: store, processor: processor, now: time.Now}
}

// PreviewTotals recomputes the totals of an unsaved form. Nothing is stored.
func (s *WorkOrderService) PreviewTotals(ctx context.Context, req *connect.Request[api.PreviewTotalsRequest]) (*connect.Response[api.PreviewTotalsResponse], error) {
	totals := workorder.Totals(workorder.LineItems(req.Msg.LineItems), req.Msg.Financials)
	return connect.NewResponse(&api.PreviewTotalsResponse{
		Subtotal:           totals.Subtotal,
		LabourCost:         totals.LabourCost,
		PartsCost:          totals.PartsCost,
		TotalAmount:        totals.TotalAmount,
		OutstandingBalance: totals.OutstandingBalance,
	}), nil
}

// CreateWorkOrder turns a draft into a Pending work order.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, req *connect.Request[api.CreateWorkOrderRequest]) (*connect.Response[api.CreateWorkOrderResponse], error) {
	slog.Info("CreateWorkOrder request received",
		"customer_id", req.Msg.CustomerID,
		"line_items", len(req.Msg.LineItems),
	)

	wo, err := s.processor.Create(ctx, &req.Msg.WorkOrderDraft)
	if err != nil {
		return nil, toConnectError("CreateWorkOrder", err, "customer_id", req.Msg.CustomerID)
	}

	return connect.NewResponse(&api.CreateWorkOrderResponse{WorkOrder: wo}), nil
}

// ListWorkOrders returns work orders newest first with customer names resolved.
func (s *WorkOrderService) ListWorkOrders(ctx context.Context, req *connect.Request[api.ListWorkOrdersRequest]) (*connect.Response[api.ListWorkOrdersResponse], error) {
	slog.Info("ListWorkOrders request received", "status", req.Msg.Status, "customer_id", req.Msg.CustomerID)

	if err := checkStatus(req.Msg.Status); err != nil {
		return nil, err
	}

	rows, err := s.rows(ctx, req.Msg.Status)
	if err != nil {
		return nil, toConnectError("ListWorkOrders", err)
	}

	summaries := []*api.WorkOrderSummary{}
	for _, row := range rows {
		if req.Msg.CustomerID != "" && row.WorkOrder.CustomerID != req.Msg.CustomerID {
			continue
		}
		summaries = append(summaries, &api.WorkOrderSummary{WorkOrder: row.WorkOrder, CustomerName: row.CustomerName})
	}

	slog.Info("ListWorkOrders successful", "count", len(summaries))
	return connect.NewResponse(&api.ListWorkOrdersResponse{WorkOrders: summaries}), nil
}

// GetWorkOrder returns one work order.
func (s *WorkOrderService) GetWorkOrder(ctx context.Context, req *connect.Request[api.GetWorkOrderRequest]) (*connect.Response[api.GetWorkOrderResponse], error) {
	slog.Info("GetWorkOrder request received", "work_order_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	wo, customer, err := s.load(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetWorkOrder", err, "work_order_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.GetWorkOrderResponse{
		WorkOrder:    wo,
		CustomerName: calculator.CustomerName(wo, customer),
	}), nil
}

// UpdateWorkOrder applies the edit form and re-derives the order's totals.
func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, req *connect.Request[api.UpdateWorkOrderRequest]) (*connect.Response[api.UpdateWorkOrderResponse], error) {
	slog.Info("UpdateWorkOrder request received", "work_order_id", req.Msg.ID, "line_items", len(req.Msg.LineItems))

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	wo, err := s.processor.Edit(ctx, req.Msg.ID, &req.Msg.WorkOrderEdit)
	if err != nil {
		return nil, toConnectError("UpdateWorkOrder", err, "work_order_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.UpdateWorkOrderResponse{WorkOrder: wo}), nil
}

// CompleteWorkOrder marks an order Completed and deducts its parts from stock.
func (s *WorkOrderService) CompleteWorkOrder(ctx context.Context, req *connect.Request[api.CompleteWorkOrderRequest]) (*connect.Response[api.CompleteWorkOrderResponse], error) {
	slog.Info("CompleteWorkOrder request received", "work_order_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	completion, err := s.processor.Complete(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("CompleteWorkOrder", err, "work_order_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.CompleteWorkOrderResponse{Completion: completion}), nil
}

// DeleteWorkOrder removes an order. Stock already deducted stays deducted.
func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, req *connect.Request[api.DeleteWorkOrderRequest]) (*connect.Response[api.DeleteWorkOrderResponse], error) {
	slog.Info("DeleteWorkOrder request received", "work_order_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.processor.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteWorkOrder", err, "work_order_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteWorkOrderResponse{}), nil
}

// GetInvoice renders the printable invoice of an order.
func (s *WorkOrderService) GetInvoice(ctx context.Context, req *connect.Request[api.GetInvoiceRequest]) (*connect.Response[api.GetInvoiceResponse], error) {
	slog.Info("GetInvoice request received", "work_order_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	wo, customer, err := s.load(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetInvoice", err, "work_order_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.GetInvoiceResponse{Invoice: workorder.NewInvoice(wo, customer)}), nil
}

// ExportWorkOrders renders the filtered order list as an xlsx workbook.
func (s *WorkOrderService) ExportWorkOrders(ctx context.Context, req *connect.Request[api.ExportWorkOrdersRequest]) (*connect.Response[api.ExportWorkOrdersResponse], error) {
	slog.Info("ExportWorkOrders request received", "status", req.Msg.Status)

	if err := checkStatus(req.Msg.Status); err != nil {
		return nil, err
	}
	rows, err := s.rows(ctx, req.Msg.Status)
	if err != nil {
		return nil, toConnectError("ExportWorkOrders", err)
	}

	now := s.now()
	data, err := export.WorkOrdersWorkbook(rows, now.Location())
	if err != nil {
		return nil, toConnectError("ExportWorkOrders", err)
	}

	slog.Info("ExportWorkOrders successful", "rows", len(rows), "bytes", len(data))
	return connect.NewResponse(&api.ExportWorkOrdersResponse{
		Filename:    export.Filename(now),
		ContentType: export.ContentType,
		Data:        data,
	}), nil
}

// load fetches an order and its customer. A customer that no longer exists
// is returned as nil.
func (s *WorkOrderService) load(ctx context.Context, id string) (*models.WorkOrder, *models.Customer, error) {
	wo, err := s.store.GetWorkOrder(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if wo.CustomerID == "" {
		return wo, nil, nil
	}
	customer, err := s.store.GetCustomer(ctx, wo.CustomerID)
	if errors.Is(err, storage.ErrNotFound) {
		return wo, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return wo, customer, nil
}

// rows lists orders with the given status (all when empty) and resolves
// their customer names.
func (s *WorkOrderService) rows(ctx context.Context, status models.WorkOrderStatus) ([]export.Row, error) {
	orders, err := s.store.ListWorkOrders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	rows := []export.Row{}
	for _, wo := range orders {
		if status != "" && wo.Status != status {
			continue
		}
		rows = append(rows, export.Row{WorkOrder: wo, CustomerName: calculator.CustomerName(wo, byID[wo.CustomerID])})
	}
	return rows, nil
}

func checkStatus(status models.WorkOrderStatus) error {
	switch status {
	case "", models.StatusPending, models.StatusCompleted:
		return nil
	}
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", status))
}
