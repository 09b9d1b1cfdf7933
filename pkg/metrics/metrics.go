// Package metrics declares the Prometheus collectors used across the
// application. Collectors register themselves on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pdv_http_requests_total",
		Help: "Total HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pdv_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	SalesConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdv_sales_confirmed_total",
		Help: "Sales successfully confirmed.",
	})

	SalesCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdv_sales_cancelled_total",
		Help: "Sales cancelled.",
	})

	StockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pdv_stock_movements_total",
		Help: "Stock movements recorded by type.",
	}, []string{"tipo"})

	CuponsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdv_cupons_issued_total",
		Help: "Cupons fiscais issued.",
	})

	LedgerCompensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pdv_ledger_compensation_failures_total",
		Help: "Sale confirmations where the ledger entry failed after stock was applied.",
	})
)
