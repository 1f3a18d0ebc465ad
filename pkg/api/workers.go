package api

import (
	"github.com/mmynk/garagedesk/internal/calculator"
	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

type WorkerInput struct {
	Name            string                 `json:"name" validate:"required"`
	Phone           string                 `json:"phone,omitempty"`
	SalaryAmount    money.Amount           `json:"salaryAmount" validate:"gte=0"`
	SalaryFrequency models.SalaryFrequency `json:"salaryFrequency,omitempty" validate:"omitempty,oneof=Monthly Weekly Daily"`
	CommuteExpense  money.Amount           `json:"commuteExpense" validate:"gte=0"`
	ShiftExpense    money.Amount           `json:"shiftExpense" validate:"gte=0"`
	MealExpense     money.Amount           `json:"mealExpense" validate:"gte=0"`
	OtherExpenses   money.Amount           `json:"otherExpenses" validate:"gte=0"`
	PaymentStatus   models.PaymentStatus   `json:"paymentStatus,omitempty" validate:"omitempty,oneof=Paid Unpaid"`
}

// WorkerSummary is a worker with payroll and performance figures.
type WorkerSummary struct {
	*models.Worker
	TotalExpenses float64                `json:"totalExpenses"`
	MonthlySalary float64                `json:"monthlySalary"`
	Performance   calculator.WorkerStats `json:"performance"`
}

type CreateWorkerRequest struct {
	Worker WorkerInput `json:"worker"`
}

type CreateWorkerResponse struct {
	Worker *models.Worker `json:"worker"`
}

type ListWorkersRequest struct{}

type ListWorkersResponse struct {
	Workers []*WorkerSummary `json:"workers"`
}

type GetWorkerRequest struct {
	ID string `json:"id"`
}

type GetWorkerResponse struct {
	Worker     *WorkerSummary      `json:"worker"`
	WorkOrders []*models.WorkOrder `json:"workOrders"`
}

type UpdateWorkerRequest struct {
	ID     string      `json:"id"`
	Worker WorkerInput `json:"worker"`
}

type UpdateWorkerResponse struct {
	Worker *models.Worker `json:"worker"`
}

type DeleteWorkerRequest struct {
	ID string `json:"id"`
}

type DeleteWorkerResponse struct{}

type MarkWorkerPaidRequest struct {
	ID string `json:"id"`
}

type MarkWorkerPaidResponse struct {
	Worker *models.Worker `json:"worker"`
}

type SpendingInput struct {
	Category    string       `json:"category" validate:"required"`
	Amount      money.Amount `json:"amount" validate:"gte=0"`
	Date        int64        `json:"date,omitempty"`
	Description string       `json:"description,omitempty"`
}

type CreateSpendingRequest struct {
	Spending SpendingInput `json:"spending"`
}

type CreateSpendingResponse struct {
	Spending *models.Spending `json:"spending"`
}

type ListSpendingsRequest struct {
	// From and To bound Date as [From, To); zero means unbounded.
	From int64 `json:"from,omitempty"`
	To   int64 `json:"to,omitempty"`
}

type ListSpendingsResponse struct {
	Spendings []*models.Spending `json:"spendings"`
	Total     float64            `json:"total"`
}

type DeleteSpendingRequest struct {
	ID string `json:"id"`
}

type DeleteSpendingResponse struct{}
