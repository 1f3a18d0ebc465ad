package calculator

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	standardItems := []Item{
		{Kind: KindService, Quantity: 2, UnitPrice: 50},
		{Kind: KindPart, Quantity: 3, UnitPrice: 20},
	}

	tests := []struct {
		name         string
		items        []Item
		financials   Financials
		validateFunc func(t *testing.T, got Totals)
	}{
		{
			name:  "service and part with all charges",
			items: standardItems,
			financials: Financials{
				Parking: 10, Taxes: 5, VAT: 18, Discount: 20, AmountReceived: 100,
			},
			validateFunc: func(t *testing.T, got Totals) {
				// labour = 2*50 = 100, parts = 3*20 = 60
				// total = 100 + 60 + 10 + 5 + 18 - 20 = 173, outstanding = 73
				if got.LabourCost != 100 {
					t.Errorf("LabourCost = %v, want 100", got.LabourCost)
				}
				if got.PartsCost != 60 {
					t.Errorf("PartsCost = %v, want 60", got.PartsCost)
				}
				if got.TotalAmount != 173 {
					t.Errorf("TotalAmount = %v, want 173", got.TotalAmount)
				}
				if got.OutstandingBalance != 73 {
					t.Errorf("OutstandingBalance = %v, want 73", got.OutstandingBalance)
				}
				if got.Subtotal != 170 {
					t.Errorf("Subtotal = %v, want 170", got.Subtotal)
				}
			},
		},
		{
			name:  "overpayment clamps outstanding but not total",
			items: standardItems,
			financials: Financials{
				Parking: 10, Taxes: 5, VAT: 18, Discount: 20, AmountReceived: 500,
			},
			validateFunc: func(t *testing.T, got Totals) {
				if got.OutstandingBalance != 0 {
					t.Errorf("OutstandingBalance = %v, want 0", got.OutstandingBalance)
				}
				if got.TotalAmount != 173 {
					t.Errorf("TotalAmount = %v, want 173", got.TotalAmount)
				}
			},
		},
		{
			name:       "discount larger than gross yields negative total",
			items:      []Item{{Kind: KindService, Quantity: 1, UnitPrice: 30}},
			financials: Financials{Discount: 50},
			validateFunc: func(t *testing.T, got Totals) {
				if got.TotalAmount != -20 {
					t.Errorf("TotalAmount = %v, want -20", got.TotalAmount)
				}
				if got.OutstandingBalance != 0 {
					t.Errorf("OutstandingBalance = %v, want 0", got.OutstandingBalance)
				}
			},
		},
		{
			name:       "no items only parking",
			items:      nil,
			financials: Financials{Parking: 15},
			validateFunc: func(t *testing.T, got Totals) {
				if got.Subtotal != 15 || got.TotalAmount != 15 || got.OutstandingBalance != 15 {
					t.Errorf("got %+v, want subtotal/total/outstanding of 15", got)
				}
			},
		},
		{
			name: "unknown kind counts toward subtotal only",
			items: []Item{
				{Kind: "Misc", Quantity: 1, UnitPrice: 40},
				{Kind: KindPart, Quantity: 1, UnitPrice: 10},
			},
			validateFunc: func(t *testing.T, got Totals) {
				if got.Subtotal != 50 {
					t.Errorf("Subtotal = %v, want 50", got.Subtotal)
				}
				if got.TotalAmount != 10 {
					t.Errorf("TotalAmount = %v, want 10", got.TotalAmount)
				}
			},
		},
		{
			name: "fractional prices stay exact",
			items: []Item{
				{Kind: KindPart, Quantity: 3, UnitPrice: 19.99},
				{Kind: KindService, Quantity: 1, UnitPrice: 0.1},
			},
			financials: Financials{Taxes: 0.2},
			validateFunc: func(t *testing.T, got Totals) {
				if got.PartsCost != 59.97 {
					t.Errorf("PartsCost = %v, want 59.97", got.PartsCost)
				}
				if got.TotalAmount != 60.27 {
					t.Errorf("TotalAmount = %v, want 60.27", got.TotalAmount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Calculate(tt.items, tt.financials))
		})
	}
}

func TestCalculate_TotalIdentity(t *testing.T) {
	itemSets := [][]Item{
		nil,
		{{Kind: KindService, Quantity: 1, UnitPrice: 12.5}},
		{{Kind: KindPart, Quantity: 4, UnitPrice: 7.25}, {Kind: KindService, Quantity: 2, UnitPrice: 33}},
		{{Kind: KindPart, Quantity: 0, UnitPrice: 99}},
	}
	financialSets := []Financials{
		{},
		{Parking: 5, Taxes: 2.5, VAT: 3, Discount: 1, AmountReceived: 10},
		{Discount: 1000, AmountReceived: 0},
		{AmountReceived: 10000},
	}

	for _, items := range itemSets {
		for _, f := range financialSets {
			got := Calculate(items, f)
			want := got.LabourCost + got.PartsCost + f.Parking + f.Taxes + f.VAT - f.Discount
			if math.Abs(got.TotalAmount-want) > 1e-9 {
				t.Errorf("TotalAmount = %v, want %v (items=%v, f=%+v)", got.TotalAmount, want, items, f)
			}
			if got.OutstandingBalance < 0 {
				t.Errorf("OutstandingBalance negative: %v", got.OutstandingBalance)
			}
			wantOutstanding := math.Max(0, got.TotalAmount-f.AmountReceived)
			if math.Abs(got.OutstandingBalance-wantOutstanding) > 1e-9 {
				t.Errorf("OutstandingBalance = %v, want %v", got.OutstandingBalance, wantOutstanding)
			}
		}
	}
}
