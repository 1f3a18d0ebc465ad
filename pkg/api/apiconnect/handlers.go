package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/pkg/api"
)

// unary registers one unary procedure on mux.
func unary[Req, Res any](mux *http.ServeMux, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error), opts []connect.HandlerOption) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

// handlerOptions puts the JSON codec ahead of the caller's options.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

// AuthServiceHandler is implemented by the AuthService server.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for every AuthService procedure.
// It returns the path prefix to mount the handler on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, AuthServiceRegisterProcedure, svc.Register, opts)
	unary(mux, AuthServiceLoginProcedure, svc.Login, opts)
	unary(mux, AuthServiceLogoutProcedure, svc.Logout, opts)
	unary(mux, AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts)
	return "/" + AuthServiceName + "/", mux
}

// CustomerServiceHandler is implemented by the CustomerService server.
type CustomerServiceHandler interface {
	CreateCustomer(context.Context, *connect.Request[api.CreateCustomerRequest]) (*connect.Response[api.CreateCustomerResponse], error)
	ListCustomers(context.Context, *connect.Request[api.ListCustomersRequest]) (*connect.Response[api.ListCustomersResponse], error)
	GetCustomer(context.Context, *connect.Request[api.GetCustomerRequest]) (*connect.Response[api.GetCustomerResponse], error)
	UpdateCustomer(context.Context, *connect.Request[api.UpdateCustomerRequest]) (*connect.Response[api.UpdateCustomerResponse], error)
	DeleteCustomer(context.Context, *connect.Request[api.DeleteCustomerRequest]) (*connect.Response[api.DeleteCustomerResponse], error)
}

// NewCustomerServiceHandler builds an HTTP handler for every CustomerService procedure.
// It returns the path prefix to mount the handler on.
func NewCustomerServiceHandler(svc CustomerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, CustomerServiceCreateCustomerProcedure, svc.CreateCustomer, opts)
	unary(mux, CustomerServiceListCustomersProcedure, svc.ListCustomers, opts)
	unary(mux, CustomerServiceGetCustomerProcedure, svc.GetCustomer, opts)
	unary(mux, CustomerServiceUpdateCustomerProcedure, svc.UpdateCustomer, opts)
	unary(mux, CustomerServiceDeleteCustomerProcedure, svc.DeleteCustomer, opts)
	return "/" + CustomerServiceName + "/", mux
}

// WorkOrderServiceHandler is implemented by the WorkOrderService server.
type WorkOrderServiceHandler interface {
	PreviewTotals(context.Context, *connect.Request[api.PreviewTotalsRequest]) (*connect.Response[api.PreviewTotalsResponse], error)
	CreateWorkOrder(context.Context, *connect.Request[api.CreateWorkOrderRequest]) (*connect.Response[api.CreateWorkOrderResponse], error)
	ListWorkOrders(context.Context, *connect.Request[api.ListWorkOrdersRequest]) (*connect.Response[api.ListWorkOrdersResponse], error)
	GetWorkOrder(context.Context, *connect.Request[api.GetWorkOrderRequest]) (*connect.Response[api.GetWorkOrderResponse], error)
	UpdateWorkOrder(context.Context, *connect.Request[api.UpdateWorkOrderRequest]) (*connect.Response[api.UpdateWorkOrderResponse], error)
	CompleteWorkOrder(context.Context, *connect.Request[api.CompleteWorkOrderRequest]) (*connect.Response[api.CompleteWorkOrderResponse], error)
	DeleteWorkOrder(context.Context, *connect.Request[api.DeleteWorkOrderRequest]) (*connect.Response[api.DeleteWorkOrderResponse], error)
	GetInvoice(context.Context, *connect.Request[api.GetInvoiceRequest]) (*connect.Response[api.GetInvoiceResponse], error)
	ExportWorkOrders(context.Context, *connect.Request[api.ExportWorkOrdersRequest]) (*connect.Response[api.ExportWorkOrdersResponse], error)
}

// NewWorkOrderServiceHandler builds an HTTP handler for every WorkOrderService procedure.
// It returns the path prefix to mount the handler on.
func NewWorkOrderServiceHandler(svc WorkOrderServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, WorkOrderServicePreviewTotalsProcedure, svc.PreviewTotals, opts)
	unary(mux, WorkOrderServiceCreateWorkOrderProcedure, svc.CreateWorkOrder, opts)
	unary(mux, WorkOrderServiceListWorkOrdersProcedure, svc.ListWorkOrders, opts)
	unary(mux, WorkOrderServiceGetWorkOrderProcedure, svc.GetWorkOrder, opts)
	unary(mux, WorkOrderServiceUpdateWorkOrderProcedure, svc.UpdateWorkOrder, opts)
	unary(mux, WorkOrderServiceCompleteWorkOrderProcedure, svc.CompleteWorkOrder, opts)
	unary(mux, WorkOrderServiceDeleteWorkOrderProcedure, svc.DeleteWorkOrder, opts)
	unary(mux, WorkOrderServiceGetInvoiceProcedure, svc.GetInvoice, opts)
	unary(mux, WorkOrderServiceExportWorkOrdersProcedure, svc.ExportWorkOrders, opts)
	return "/" + WorkOrderServiceName + "/", mux
}

// InventoryServiceHandler is implemented by the InventoryService server.
type InventoryServiceHandler interface {
	CreateInventoryItem(context.Context, *connect.Request[api.CreateInventoryItemRequest]) (*connect.Response[api.CreateInventoryItemResponse], error)
	ListInventoryItems(context.Context, *connect.Request[api.ListInventoryItemsRequest]) (*connect.Response[api.ListInventoryItemsResponse], error)
	UpdateInventoryItem(context.Context, *connect.Request[api.UpdateInventoryItemRequest]) (*connect.Response[api.UpdateInventoryItemResponse], error)
	DeleteInventoryItem(context.Context, *connect.Request[api.DeleteInventoryItemRequest]) (*connect.Response[api.DeleteInventoryItemResponse], error)
	ListLowStock(context.Context, *connect.Request[api.ListLowStockRequest]) (*connect.Response[api.ListLowStockResponse], error)
}

// NewInventoryServiceHandler builds an HTTP handler for every InventoryService procedure.
// It returns the path prefix to mount the handler on.
func NewInventoryServiceHandler(svc InventoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, InventoryServiceCreateInventoryItemProcedure, svc.CreateInventoryItem, opts)
	unary(mux, InventoryServiceListInventoryItemsProcedure, svc.ListInventoryItems, opts)
	unary(mux, InventoryServiceUpdateInventoryItemProcedure, svc.UpdateInventoryItem, opts)
	unary(mux, InventoryServiceDeleteInventoryItemProcedure, svc.DeleteInventoryItem, opts)
	unary(mux, InventoryServiceListLowStockProcedure, svc.ListLowStock, opts)
	return "/" + InventoryServiceName + "/", mux
}

// CatalogServiceHandler is implemented by the CatalogService server.
type CatalogServiceHandler interface {
	CreateServiceItem(context.Context, *connect.Request[api.CreateServiceItemRequest]) (*connect.Response[api.CreateServiceItemResponse], error)
	ListServiceItems(context.Context, *connect.Request[api.ListServiceItemsRequest]) (*connect.Response[api.ListServiceItemsResponse], error)
	UpdateServiceItem(context.Context, *connect.Request[api.UpdateServiceItemRequest]) (*connect.Response[api.UpdateServiceItemResponse], error)
	DeleteServiceItem(context.Context, *connect.Request[api.DeleteServiceItemRequest]) (*connect.Response[api.DeleteServiceItemResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler for every CatalogService procedure.
// It returns the path prefix to mount the handler on.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, CatalogServiceCreateServiceItemProcedure, svc.CreateServiceItem, opts)
	unary(mux, CatalogServiceListServiceItemsProcedure, svc.ListServiceItems, opts)
	unary(mux, CatalogServiceUpdateServiceItemProcedure, svc.UpdateServiceItem, opts)
	unary(mux, CatalogServiceDeleteServiceItemProcedure, svc.DeleteServiceItem, opts)
	return "/" + CatalogServiceName + "/", mux
}

// WorkerServiceHandler is implemented by the WorkerService server.
type WorkerServiceHandler interface {
	CreateWorker(context.Context, *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error)
	ListWorkers(context.Context, *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error)
	GetWorker(context.Context, *connect.Request[api.GetWorkerRequest]) (*connect.Response[api.GetWorkerResponse], error)
	UpdateWorker(context.Context, *connect.Request[api.UpdateWorkerRequest]) (*connect.Response[api.UpdateWorkerResponse], error)
	DeleteWorker(context.Context, *connect.Request[api.DeleteWorkerRequest]) (*connect.Response[api.DeleteWorkerResponse], error)
	MarkWorkerPaid(context.Context, *connect.Request[api.MarkWorkerPaidRequest]) (*connect.Response[api.MarkWorkerPaidResponse], error)
}

// NewWorkerServiceHandler builds an HTTP handler for every WorkerService procedure.
// It returns the path prefix to mount the handler on.
func NewWorkerServiceHandler(svc WorkerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, WorkerServiceCreateWorkerProcedure, svc.CreateWorker, opts)
	unary(mux, WorkerServiceListWorkersProcedure, svc.ListWorkers, opts)
	unary(mux, WorkerServiceGetWorkerProcedure, svc.GetWorker, opts)
	unary(mux, WorkerServiceUpdateWorkerProcedure, svc.UpdateWorker, opts)
	unary(mux, WorkerServiceDeleteWorkerProcedure, svc.DeleteWorker, opts)
	unary(mux, WorkerServiceMarkWorkerPaidProcedure, svc.MarkWorkerPaid, opts)
	return "/" + WorkerServiceName + "/", mux
}

// SpendingServiceHandler is implemented by the SpendingService server.
type SpendingServiceHandler interface {
	CreateSpending(context.Context, *connect.Request[api.CreateSpendingRequest]) (*connect.Response[api.CreateSpendingResponse], error)
	ListSpendings(context.Context, *connect.Request[api.ListSpendingsRequest]) (*connect.Response[api.ListSpendingsResponse], error)
	DeleteSpending(context.Context, *connect.Request[api.DeleteSpendingRequest]) (*connect.Response[api.DeleteSpendingResponse], error)
}

// NewSpendingServiceHandler builds an HTTP handler for every SpendingService procedure.
// It returns the path prefix to mount the handler on.
func NewSpendingServiceHandler(svc SpendingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, SpendingServiceCreateSpendingProcedure, svc.CreateSpending, opts)
	unary(mux, SpendingServiceListSpendingsProcedure, svc.ListSpendings, opts)
	unary(mux, SpendingServiceDeleteSpendingProcedure, svc.DeleteSpending, opts)
	return "/" + SpendingServiceName + "/", mux
}

// InsightsServiceHandler is implemented by the InsightsService server.
type InsightsServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	GetInsights(context.Context, *connect.Request[api.GetInsightsRequest]) (*connect.Response[api.GetInsightsResponse], error)
}

// NewInsightsServiceHandler builds an HTTP handler for every InsightsService procedure.
// It returns the path prefix to mount the handler on.
func NewInsightsServiceHandler(svc InsightsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	unary(mux, InsightsServiceGetDashboardProcedure, svc.GetDashboard, opts)
	unary(mux, InsightsServiceGetInsightsProcedure, svc.GetInsights, opts)
	return "/" + InsightsServiceName + "/", mux
}
