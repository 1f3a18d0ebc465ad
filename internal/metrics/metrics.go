// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCRequests counts RPCs by procedure and Connect code.
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "garage",
		Name:      "rpc_requests_total",
		Help:      "RPCs handled, by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes handler latency by procedure.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "garage",
		Name:      "rpc_duration_seconds",
		Help:      "RPC handler latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	WorkOrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "garage",
		Name:      "work_orders_created_total",
		Help:      "Work orders created.",
	})

	WorkOrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "garage",
		Name:      "work_orders_completed_total",
		Help:      "Work orders transitioned to Completed.",
	})

	// InventoryDeducted sums the stock units removed by completions.
	InventoryDeducted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "garage",
		Name:      "inventory_units_deducted_total",
		Help:      "Inventory units deducted on work order completion.",
	})

	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "garage",
		Name:      "inventory_low_stock_items",
		Help:      "Inventory items at or below their reorder point at the last scan.",
	})
)
