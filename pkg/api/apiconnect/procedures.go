package apiconnect

// Fully-qualified service names.
const (
	AuthServiceName      = "garage.v1.AuthService"
	CustomerServiceName  = "garage.v1.CustomerService"
	WorkOrderServiceName = "garage.v1.WorkOrderService"
	InventoryServiceName = "garage.v1.InventoryService"
	CatalogServiceName   = "garage.v1.CatalogService"
	WorkerServiceName    = "garage.v1.WorkerService"
	SpendingServiceName  = "garage.v1.SpendingService"
	InsightsServiceName  = "garage.v1.InsightsService"
)

// Procedure paths, used both as HTTP routes and in interceptors.
const (
	AuthServiceRegisterProcedure       = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceLogoutProcedure         = "/" + AuthServiceName + "/Logout"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	CustomerServiceCreateCustomerProcedure = "/" + CustomerServiceName + "/CreateCustomer"
	CustomerServiceListCustomersProcedure  = "/" + CustomerServiceName + "/ListCustomers"
	CustomerServiceGetCustomerProcedure    = "/" + CustomerServiceName + "/GetCustomer"
	CustomerServiceUpdateCustomerProcedure = "/" + CustomerServiceName + "/UpdateCustomer"
	CustomerServiceDeleteCustomerProcedure = "/" + CustomerServiceName + "/DeleteCustomer"

	WorkOrderServicePreviewTotalsProcedure     = "/" + WorkOrderServiceName + "/PreviewTotals"
	WorkOrderServiceCreateWorkOrderProcedure   = "/" + WorkOrderServiceName + "/CreateWorkOrder"
	WorkOrderServiceListWorkOrdersProcedure    = "/" + WorkOrderServiceName + "/ListWorkOrders"
	WorkOrderServiceGetWorkOrderProcedure      = "/" + WorkOrderServiceName + "/GetWorkOrder"
	WorkOrderServiceUpdateWorkOrderProcedure   = "/" + WorkOrderServiceName + "/UpdateWorkOrder"
	WorkOrderServiceCompleteWorkOrderProcedure = "/" + WorkOrderServiceName + "/CompleteWorkOrder"
	WorkOrderServiceDeleteWorkOrderProcedure   = "/" + WorkOrderServiceName + "/DeleteWorkOrder"
	WorkOrderServiceGetInvoiceProcedure        = "/" + WorkOrderServiceName + "/GetInvoice"
	WorkOrderServiceExportWorkOrdersProcedure  = "/" + WorkOrderServiceName + "/ExportWorkOrders"

	InventoryServiceCreateInventoryItemProcedure = "/" + InventoryServiceName + "/CreateInventoryItem"
	InventoryServiceListInventoryItemsProcedure  = "/" + InventoryServiceName + "/ListInventoryItems"
	InventoryServiceUpdateInventoryItemProcedure = "/" + InventoryServiceName + "/UpdateInventoryItem"
	InventoryServiceDeleteInventoryItemProcedure = "/" + InventoryServiceName + "/DeleteInventoryItem"
	InventoryServiceListLowStockProcedure        = "/" + InventoryServiceName + "/ListLowStock"

	CatalogServiceCreateServiceItemProcedure = "/" + CatalogServiceName + "/CreateServiceItem"
	CatalogServiceListServiceItemsProcedure  = "/" + CatalogServiceName + "/ListServiceItems"
	CatalogServiceUpdateServiceItemProcedure = "/" + CatalogServiceName + "/UpdateServiceItem"
	CatalogServiceDeleteServiceItemProcedure = "/" + CatalogServiceName + "/DeleteServiceItem"

	WorkerServiceCreateWorkerProcedure   = "/" + WorkerServiceName + "/CreateWorker"
	WorkerServiceListWorkersProcedure    = "/" + WorkerServiceName + "/ListWorkers"
	WorkerServiceGetWorkerProcedure      = "/" + WorkerServiceName + "/GetWorker"
	WorkerServiceUpdateWorkerProcedure   = "/" + WorkerServiceName + "/UpdateWorker"
	WorkerServiceDeleteWorkerProcedure   = "/" + WorkerServiceName + "/DeleteWorker"
	WorkerServiceMarkWorkerPaidProcedure = "/" + WorkerServiceName + "/MarkWorkerPaid"

	SpendingServiceCreateSpendingProcedure = "/" + SpendingServiceName + "/CreateSpending"
	SpendingServiceListSpendingsProcedure  = "/" + SpendingServiceName + "/ListSpendings"
	SpendingServiceDeleteSpendingProcedure = "/" + SpendingServiceName + "/DeleteSpending"

	InsightsServiceGetDashboardProcedure = "/" + InsightsServiceName + "/GetDashboard"
	InsightsServiceGetInsightsProcedure  = "/" + InsightsServiceName + "/GetInsights"
)
