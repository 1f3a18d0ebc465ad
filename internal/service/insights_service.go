package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/metrics"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/pkg/api"
)

// InsightsService implements the Connect InsightsService: the read-only
// dashboard and business report.
type InsightsService struct {
	store storage.Store
	now   func() time.Time
}

// NewInsightsService creates a new InsightsService with the given storage backend.
func NewInsightsService(store storage.Store) *InsightsService {
	return &InsightsService{store: store, now: time.Now}
}

// GetDashboard computes the landing page summary.
func (s *InsightsService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("GetDashboard", err)
	}

	dashboard := calculator.BuildDashboard(s.now(), snap)
	metrics.LowStockItems.Set(float64(dashboard.InventoryAlerts))

	slog.Info("GetDashboard successful",
		"open_work_orders", dashboard.OpenWorkOrders,
		"inventory_alerts", dashboard.InventoryAlerts,
	)
	return connect.NewResponse(&api.GetDashboardResponse{Dashboard: dashboard}), nil
}

// GetInsights computes the six-month business report.
func (s *InsightsService) GetInsights(ctx context.Context, req *connect.Request[api.GetInsightsRequest]) (*connect.Response[api.GetInsightsResponse], error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, toConnectError("GetInsights", err)
	}

	insights := calculator.BuildInsights(s.now(), snap)
	slog.Info("GetInsights successful", "net_earned", insights.NetEarned, "net_profit", insights.NetProfit)
	return connect.NewResponse(&api.GetInsightsResponse{Insights: insights}), nil
}

func (s *InsightsService) snapshot(ctx context.Context) (calculator.Snapshot, error) {
	var snap calculator.Snapshot
	var err error
	if snap.Customers, err = s.store.ListCustomers(ctx); err != nil {
		return snap, err
	}
	if snap.WorkOrders, err = s.store.ListWorkOrders(ctx); err != nil {
		return snap, err
	}
	if snap.Inventory, err = s.store.ListInventoryItems(ctx); err != nil {
		return snap, err
	}
	if snap.Spendings, err = s.store.ListSpendings(ctx); err != nil {
		return snap, err
	}
	if snap.Workers, err = s.store.ListWorkers(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}
