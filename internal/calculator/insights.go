package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/garagedesk/internal/models"
	"github.com/mmynk/garagedesk/internal/money"
)

const (
	recentCompletedLimit = 3
	insightMonths        = 6
	revenueWindowDays    = 30
)

// CustomerOutstanding is what a customer still owes according to their own
// billing snapshot. It deliberately ignores work orders.
func CustomerOutstanding(totalBilled, paidAmount float64) float64 {
	return money.Max0(money.Sub(totalBilled, paidAmount))
}

// WorkerExpenses sums the four fixed expense categories of a worker.
func WorkerExpenses(w *models.Worker) float64 {
	return money.Sum(w.CommuteExpense, w.ShiftExpense, w.MealExpense, w.OtherExpenses)
}

// MonthlySalary normalises a worker's salary to a monthly amount.
// Daily wages assume a 26 working-day month.
func MonthlySalary(w *models.Worker) float64 {
	switch w.SalaryFrequency {
	case models.SalaryWeekly:
		return money.Mul(w.SalaryAmount, 52.0/12.0)
	case models.SalaryDaily:
		return money.Mul(w.SalaryAmount, 26)
	default:
		return w.SalaryAmount
	}
}

// MonthlyWorkforceCost is salary plus expenses across all workers.
func MonthlyWorkforceCost(workers []*models.Worker) float64 {
	var costs []float64
	for _, w := range workers {
		costs = append(costs, MonthlySalary(w), WorkerExpenses(w))
	}
	return money.Sum(costs...)
}

// WorkerStats summarises the jobs linked to one worker.
type WorkerStats struct {
	JobsAssigned      int               `json:"jobsAssigned"`
	JobsCompleted     int               `json:"jobsCompleted"`
	ServicesDelivered int               `json:"servicesDelivered"`
	LastJob           *models.WorkOrder `json:"lastJob,omitempty"`
}

// WorkerPerformance matches orders to a worker through WorkOrder.WorkerID
// only.
func WorkerPerformance(workerID string, orders []*models.WorkOrder) WorkerStats {
	var stats WorkerStats
	if workerID == "" {
		return stats
	}
	for _, wo := range orders {
		if wo.WorkerID != workerID {
			continue
		}
		stats.JobsAssigned++
		if wo.IsCompleted() {
			stats.JobsCompleted++
		}
		for _, li := range wo.LineItems {
			if li.Type == models.LineItemService {
				stats.ServicesDelivered++
			}
		}
		if stats.LastJob == nil || wo.EffectiveDate() > stats.LastJob.EffectiveDate() {
			stats.LastJob = wo
		}
	}
	return stats
}

// IsLowStock reports whether an item is at or below its reorder point.
func IsLowStock(item *models.InventoryItem) bool {
	return item.QuantityOnHand <= item.ReorderPoint()
}

// LowStock filters the items that need restocking.
func LowStock(items []*models.InventoryItem) []*models.InventoryItem {
	low := []*models.InventoryItem{}
	for _, item := range items {
		if IsLowStock(item) {
			low = append(low, item)
		}
	}
	return low
}

// OrderRevenue is the stored total of an order, or the total recomputed from
// its stored cost fields when none was written.
func OrderRevenue(wo *models.WorkOrder) float64 {
	if wo.TotalAmount != 0 {
		return wo.TotalAmount
	}
	return money.Sub(money.Sum(wo.LabourCost, wo.PartsCost, wo.ParkingCharge, wo.Taxes, wo.VAT), wo.Discount)
}

// CustomerName resolves the display name of an order's customer, falling
// back to the inline snapshot.
func CustomerName(wo *models.WorkOrder, customer *models.Customer) string {
	if customer != nil && customer.Name != "" {
		return customer.Name
	}
	if wo.TempCustomerName != "" {
		return wo.TempCustomerName
	}
	return "Unknown Customer"
}

// PartsCost is the cost of goods for the Part lines of the given orders,
// priced at the current inventory unit cost. Lines that match no inventory
// item cost nothing.
func PartsCost(orders []*models.WorkOrder, inventory []*models.InventoryItem) float64 {
	byID := make(map[string]*models.InventoryItem, len(inventory))
	byName := make(map[string]*models.InventoryItem, len(inventory))
	for _, item := range inventory {
		byID[item.ID] = item
		byName[item.Name] = item
	}

	var costs []float64
	for _, wo := range orders {
		for _, li := range wo.LineItems {
			if li.Type != models.LineItemPart {
				continue
			}
			item, ok := byID[li.Catalog]
			if !ok {
				item, ok = byName[li.Name]
			}
			if !ok {
				continue
			}
			qty := li.Quantity
			if qty == 0 {
				qty = 1
			}
			costs = append(costs, money.Mul(item.UnitCost, qty))
		}
	}
	return money.Sum(costs...)
}

// Snapshot is the full set of collections the rollups read from.
type Snapshot struct {
	Customers  []*models.Customer
	WorkOrders []*models.WorkOrder
	Inventory  []*models.InventoryItem
	Spendings  []*models.Spending
	Workers    []*models.Worker
}

// TopWorker is the worker with the most completed jobs.
type TopWorker struct {
	Worker        *models.Worker    `json:"worker"`
	JobsCompleted int               `json:"jobsCompleted"`
	LastJob       *models.WorkOrder `json:"lastJob,omitempty"`
}

// Dashboard is the landing page summary.
type Dashboard struct {
	CustomerCount   int                     `json:"customerCount"`
	VehicleCount    int                     `json:"vehicleCount"`
	OpenWorkOrders  int                     `json:"openWorkOrders"`
	InventoryAlerts int                     `json:"inventoryAlerts"`
	LowStockItems   []*models.InventoryItem `json:"lowStockItems"`
	NetEarned       float64                 `json:"netEarned"`
	NetExpense      float64                 `json:"netExpense"`
	NetProfit       float64                 `json:"netProfit"`
	TotalSpendings  float64                 `json:"totalSpendings"`
	Revenue30Days   float64                 `json:"revenue30Days"`
	RecentCompleted []*models.WorkOrder     `json:"recentCompleted"`
	TopWorker       *TopWorker              `json:"topWorker,omitempty"`
}

// BuildDashboard computes the dashboard as of now. Financial figures cover
// the last six months; revenue also has a 30-day figure.
func BuildDashboard(now time.Time, s Snapshot) Dashboard {
	sixMonthsAgo := now.AddDate(0, -insightMonths, 0).Unix()
	thirtyDaysAgo := now.AddDate(0, 0, -revenueWindowDays).Unix()

	d := Dashboard{
		CustomerCount: len(s.Customers),
		LowStockItems: LowStock(s.Inventory),
	}
	d.InventoryAlerts = len(d.LowStockItems)
	for _, c := range s.Customers {
		if c.HasVehicle() {
			d.VehicleCount++
		}
	}

	var completed []*models.WorkOrder
	for _, wo := range s.WorkOrders {
		if wo.IsCompleted() {
			completed = append(completed, wo)
		} else {
			d.OpenWorkOrders++
		}
	}

	recent := completedSince(completed, sixMonthsAgo)
	d.NetEarned = totalRevenue(recent)
	d.Revenue30Days = totalRevenue(completedSince(completed, thirtyDaysAgo))
	d.TotalSpendings = spendingsBetween(s.Spendings, sixMonthsAgo, now.Unix()+1)
	d.NetExpense = money.Sum(
		PartsCost(recent, s.Inventory),
		money.Mul(MonthlyWorkforceCost(s.Workers), insightMonths),
		d.TotalSpendings,
	)
	d.NetProfit = money.Sub(d.NetEarned, d.NetExpense)

	sorted := append([]*models.WorkOrder(nil), completed...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate() > sorted[j].EffectiveDate()
	})
	if len(sorted) > recentCompletedLimit {
		sorted = sorted[:recentCompletedLimit]
	}
	d.RecentCompleted = sorted

	for _, w := range s.Workers {
		stats := WorkerPerformance(w.ID, s.WorkOrders)
		if d.TopWorker == nil || stats.JobsCompleted > d.TopWorker.JobsCompleted {
			d.TopWorker = &TopWorker{Worker: w, JobsCompleted: stats.JobsCompleted, LastJob: stats.LastJob}
		}
	}

	return d
}

// MonthlyPoint is one bucket of the revenue/expense chart.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Start    int64   `json:"start"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ExpenseShare is one slice of the expense breakdown chart.
type ExpenseShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Insights is the six-month business report.
type Insights struct {
	NetEarned         float64        `json:"netEarned"`
	NetExpense        float64        `json:"netExpense"`
	NetProfit         float64        `json:"netProfit"`
	ProfitMargin      float64        `json:"profitMargin"`
	TotalSpendings    float64        `json:"totalSpendings"`
	VehiclesCount     int            `json:"vehiclesCount"`
	ServicesDelivered int            `json:"servicesDelivered"`
	PartsSold         float64        `json:"partsSold"`
	PartsCost         float64        `json:"partsCost"`
	WorkforceCost     float64        `json:"workforceCost"`
	Monthly           []MonthlyPoint `json:"monthly"`
	Breakdown         []ExpenseShare `json:"breakdown"`
}

// BuildInsights computes the six-month report and its monthly series as of
// now. Buckets are calendar months in now's location, oldest first.
func BuildInsights(now time.Time, s Snapshot) Insights {
	sixMonthsAgo := now.AddDate(0, -insightMonths, 0).Unix()

	var completed []*models.WorkOrder
	for _, wo := range s.WorkOrders {
		if wo.IsCompleted() {
			completed = append(completed, wo)
		}
	}
	recent := completedSince(completed, sixMonthsAgo)
	monthlyWorkforce := MonthlyWorkforceCost(s.Workers)

	in := Insights{
		NetEarned:      totalRevenue(recent),
		TotalSpendings: spendingsBetween(s.Spendings, sixMonthsAgo, now.Unix()+1),
		PartsCost:      PartsCost(recent, s.Inventory),
		WorkforceCost:  money.Mul(monthlyWorkforce, insightMonths),
		VehiclesCount:  len(s.Customers),
	}
	in.NetExpense = money.Sum(in.PartsCost, in.WorkforceCost, in.TotalSpendings)
	in.NetProfit = money.Sub(in.NetEarned, in.NetExpense)
	if in.NetEarned > 0 {
		in.ProfitMargin = money.Round2(in.NetProfit / in.NetEarned * 100)
	}

	var partsSold []float64
	for _, wo := range recent {
		for _, li := range wo.LineItems {
			switch li.Type {
			case models.LineItemService:
				in.ServicesDelivered++
			case models.LineItemPart:
				qty := li.Quantity
				if qty == 0 {
					qty = 1
				}
				partsSold = append(partsSold, qty)
			}
		}
	}
	in.PartsSold = money.Sum(partsSold...)

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := insightMonths - 1; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var inMonth []*models.WorkOrder
		for _, wo := range completed {
			if d := wo.EffectiveDate(); d >= start.Unix() && d < end.Unix() {
				inMonth = append(inMonth, wo)
			}
		}

		in.Monthly = append(in.Monthly, MonthlyPoint{
			Month:   start.Format("Jan 2006"),
			Start:   start.Unix(),
			Revenue: totalRevenue(inMonth),
			Expenses: money.Sum(
				spendingsBetween(s.Spendings, start.Unix(), end.Unix()),
				monthlyWorkforce,
				PartsCost(inMonth, s.Inventory),
			),
		})
	}

	for _, share := range []ExpenseShare{
		{Name: "Parts", Value: in.PartsCost},
		{Name: "Workforce", Value: in.WorkforceCost},
		{Name: "Spendings", Value: in.TotalSpendings},
	} {
		if share.Value > 0 {
			in.Breakdown = append(in.Breakdown, share)
		}
	}

	return in
}

func completedSince(orders []*models.WorkOrder, since int64) []*models.WorkOrder {
	var out []*models.WorkOrder
	for _, wo := range orders {
		if wo.EffectiveDate() >= since {
			out = append(out, wo)
		}
	}
	return out
}

func totalRevenue(orders []*models.WorkOrder) float64 {
	revenue := make([]float64, 0, len(orders))
	for _, wo := range orders {
		revenue = append(revenue, OrderRevenue(wo))
	}
	return money.Sum(revenue...)
}

// spendingsBetween sums spendings dated in [from, to).
func spendingsBetween(spendings []*models.Spending, from, to int64) float64 {
	var amounts []float64
	for _, s := range spendings {
		if s.Date >= from && s.Date < to {
			amounts = append(amounts, s.Amount)
		}
	}
	return money.Sum(amounts...)
}
