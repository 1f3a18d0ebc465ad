package models

// SalaryFrequency is how often a worker's salary amount is paid.
type SalaryFrequency string

const (
	SalaryMonthly SalaryFrequency = "Monthly"
	SalaryWeekly  SalaryFrequency = "Weekly"
	SalaryDaily   SalaryFrequency = "Daily"
)

// PaymentStatus tracks whether the current pay period has been settled.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// Worker is a mechanic on the payroll.
type Worker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`

	SalaryAmount    float64         `json:"salaryAmount"`
	SalaryFrequency SalaryFrequency `json:"salaryFrequency"`

	CommuteExpense float64 `json:"commuteExpense"`
	ShiftExpense   float64 `json:"shiftExpense"`
	MealExpense    float64 `json:"mealExpense"`
	OtherExpenses  float64 `json:"otherExpenses"`

	PaymentStatus PaymentStatus `json:"paymentStatus"`
	LastPaid      int64         `json:"lastPaid,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}
