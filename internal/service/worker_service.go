package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
	"github.com/mmynk/garagedesk/internal/storage"
	"github.com/mmynk/garagedesk/internal/validate"
	"github.com/mmynk/garagedesk/pkg/api"
)

// WorkerService implements the Connect WorkerService.
type WorkerService struct {
	store storage.Store
	now   func() time.Time
}

// NewWorkerService creates a new WorkerService with the given storage backend.
func NewWorkerService(store storage.Store) *WorkerService {
	return &WorkerService{store: store, now: time.Now}
}

// CreateWorker adds a mechanic to the payroll.
func (s *WorkerService) CreateWorker(ctx context.Context, req *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error) {
	slog.Info("CreateWorker request received", "name", req.Msg.Worker.Name)

	if err := validate.Struct(&req.Msg.Worker); err != nil {
		return nil, toConnectError("CreateWorker", err)
	}

	worker := &models.Worker{}
	applyWorkerInput(worker, req.Msg.Worker)
	if err := s.store.CreateWorker(ctx, worker); err != nil {
		return nil, toConnectError("CreateWorker", err)
	}

	slog.Info("Worker created", "worker_id", worker.ID)
	return connect.NewResponse(&api.CreateWorkerResponse{Worker: worker}), nil
}

// ListWorkers returns every worker with payroll and performance figures.
func (s *WorkerService) ListWorkers(ctx context.Context, req *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error) {
	slog.Info("ListWorkers request received")

	workers, err := s.store.ListWorkers(ctx)
	if err != nil {
		return nil, toConnectError("ListWorkers", err)
	}
	orders, err := s.store.ListWorkOrders(ctx)
	if err != nil {
		return nil, toConnectError("ListWorkers", err)
	}

	summaries := make([]*api.WorkerSummary, 0, len(workers))
	for _, w := range workers {
		summaries = append(summaries, workerSummary(w, orders))
	}

	slog.Info("ListWorkers successful", "count", len(summaries))
	return connect.NewResponse(&api.ListWorkersResponse{Workers: summaries}), nil
}

// GetWorker returns a worker with the work orders assigned to them.
func (s *WorkerService) GetWorker(ctx context.Context, req *connect.Request[api.GetWorkerRequest]) (*connect.Response[api.GetWorkerResponse], error) {
	slog.Info("GetWorker request received", "worker_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	worker, err := s.store.GetWorker(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError("GetWorker", err, "worker_id", req.Msg.ID)
	}
	orders, err := s.store.ListWorkOrders(ctx)
	if err != nil {
		return nil, toConnectError("GetWorker", err, "worker_id", req.Msg.ID)
	}

	assigned := []*models.WorkOrder{}
	for _, wo := range orders {
		if wo.WorkerID == worker.ID {
			assigned = append(assigned, wo)
		}
	}

	return connect.NewResponse(&api.GetWorkerResponse{
		Worker:     workerSummary(worker, orders),
		WorkOrders: assigned,
	}), nil
}

// UpdateWorker overwrites the editable fields of a worker.
func (s *WorkerService) UpdateWorker(ctx context.Context, req *connect.Request[api.UpdateWorkerRequest]) (*connect.Response[api.UpdateWorkerResponse], error) {
	slog.Info("UpdateWorker request received", "worker_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validate.Struct(&req.Msg.Worker); err != nil {
		return nil, toConnectError("UpdateWorker", err, "worker_id", req.Msg.ID)
	}

	var worker *models.Worker
	err := s.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		worker, err = tx.GetWorker(ctx, req.Msg.ID)
		if err != nil {
			return err
		}
		applyWorkerInput(worker, req.Msg.Worker)
		return tx.UpdateWorker(ctx, worker)
	})
	if err != nil {
		return nil, toConnectError("UpdateWorker", err, "worker_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.UpdateWorkerResponse{Worker: worker}), nil
}

// DeleteWorker removes a worker. Orders keep their WorkerID.
func (s *WorkerService) DeleteWorker(ctx context.Context, req *connect.Request[api.DeleteWorkerRequest]) (*connect.Response[api.DeleteWorkerResponse], error) {
	slog.Info("DeleteWorker request received", "worker_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteWorker(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteWorker", err, "worker_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteWorkerResponse{}), nil
}

// MarkWorkerPaid settles the current pay period of a worker.
func (s *WorkerService) MarkWorkerPaid(ctx context.Context, req *connect.Request[api.MarkWorkerPaidRequest]) (*connect.Response[api.MarkWorkerPaidResponse], error) {
	slog.Info("MarkWorkerPaid request received", "worker_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	var worker *models.Worker
	err := s.store.WithinTx(ctx, func(tx storage.Store) error {
		var err error
		worker, err = tx.GetWorker(ctx, req.Msg.ID)
		if err != nil {
			return err
		}
		worker.PaymentStatus = models.PaymentPaid
		worker.LastPaid = s.now().Unix()
		return tx.UpdateWorker(ctx, worker)
	})
	if err != nil {
		return nil, toConnectError("MarkWorkerPaid", err, "worker_id", req.Msg.ID)
	}

	slog.Info("Worker marked paid", "worker_id", worker.ID, "last_paid", worker.LastPaid)
	return connect.NewResponse(&api.MarkWorkerPaidResponse{Worker: worker}), nil
}

func workerSummary(w *models.Worker, orders []*models.WorkOrder) *api.WorkerSummary {
	return &api.WorkerSummary{
		Worker:        w,
		TotalExpenses: calculator.WorkerExpenses(w),
		MonthlySalary: calculator.MonthlySalary(w),
		Performance:   calculator.WorkerPerformance(w.ID, orders),
	}
}

func applyWorkerInput(w *models.Worker, in api.WorkerInput) {
	w.Name = strings.TrimSpace(in.Name)
	w.Phone = strings.TrimSpace(in.Phone)
	w.SalaryAmount = in.SalaryAmount.Float64()
	w.CommuteExpense = in.CommuteExpense.Float64()
	w.ShiftExpense = in.ShiftExpense.Float64()
	w.MealExpense = in.MealExpense.Float64()
	w.OtherExpenses = in.OtherExpenses.Float64()
	if in.SalaryFrequency != "" {
		w.SalaryFrequency = in.SalaryFrequency
	}
	if in.PaymentStatus != "" {
		w.PaymentStatus = in.PaymentStatus
	}
}

// SpendingService implements the Connect SpendingService.
type SpendingService struct {
	store storage.Store
}

// NewSpendingService creates a new SpendingService with the given storage backend.
func NewSpendingService(store storage.Store) *SpendingService {
	return &SpendingService{store: store}
}

// CreateSpending records an operational expense. A missing date means today.
func (s *SpendingService) CreateSpending(ctx context.Context, req *connect.Request[api.CreateSpendingRequest]) (*connect.Response[api.CreateSpendingResponse], error) {
	slog.Info("CreateSpending request received", "category", req.Msg.Spending.Category)

	if err := validate.Struct(&req.Msg.Spending); err != nil {
		return nil, toConnectError("CreateSpending", err)
	}

	spending := &models.Spending{
		Category:    strings.TrimSpace(req.Msg.Spending.Category),
		Amount:      req.Msg.Spending.Amount.Float64(),
		Date:        req.Msg.Spending.Date,
		Description: req.Msg.Spending.Description,
	}
	if err := s.store.CreateSpending(ctx, spending); err != nil {
		return nil, toConnectError("CreateSpending", err)
	}

	slog.Info("Spending created", "spending_id", spending.ID, "amount", spending.Amount)
	return connect.NewResponse(&api.CreateSpendingResponse{Spending: spending}), nil
}

// ListSpendings returns spendings dated within [From, To), newest first.
func (s *SpendingService) ListSpendings(ctx context.Context, req *connect.Request[api.ListSpendingsRequest]) (*connect.Response[api.ListSpendingsResponse], error) {
	slog.Info("ListSpendings request received", "from", req.Msg.From, "to", req.Msg.To)

	all, err := s.store.ListSpendings(ctx)
	if err != nil {
		return nil, toConnectError("ListSpendings", err)
	}

	spendings := []*models.Spending{}
	var amounts []float64
	for _, sp := range all {
		if req.Msg.From != 0 && sp.Date < req.Msg.From {
			continue
		}
		if req.Msg.To != 0 && sp.Date >= req.Msg.To {
			continue
		}
		spendings = append(spendings, sp)
		amounts = append(amounts, sp.Amount)
	}

	return connect.NewResponse(&api.ListSpendingsResponse{
		Spendings: spendings,
		Total:     money.Sum(amounts...),
	}), nil
}

// DeleteSpending removes a spending entry.
func (s *SpendingService) DeleteSpending(ctx context.Context, req *connect.Request[api.DeleteSpendingRequest]) (*connect.Response[api.DeleteSpendingResponse], error) {
	slog.Info("DeleteSpending request received", "spending_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteSpending(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError("DeleteSpending", err, "spending_id", req.Msg.ID)
	}

	return connect.NewResponse(&api.DeleteSpendingResponse{}), nil
}
