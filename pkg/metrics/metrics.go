package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	PurchasesTotal        prometheus.Counter
	PurchaseFailures      *prometheus.CounterVec
	RevenueTotal          prometheus.Counter
	MedicinesAddedTotal   prometheus.Counter
	MedicinesRemovedTotal prometheus.Counter
	InventorySize         prometheus.Gauge

	ScansTotal        prometheus.Counter
	ScanDuration      prometheus.Histogram
	ExpiredItemsGauge prometheus.Gauge

	AuthFailuresTotal prometheus.Counter
}

func NewCollector(serviceName string) *Collector {
	return &Collector{
		PurchasesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "sales",
			Name:      "purchases_total",
			Help:      "Total number of completed purchases.",
		}),

		PurchaseFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "sales",
			Name:      "purchase_failures_total",
			Help:      "Rejected purchase attempts by reason.",
		}, []string{"reason"}),

		RevenueTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "sales",
			Name:      "revenue_total",
			Help:      "Cumulative value of completed purchases.",
		}),

		MedicinesAddedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "inventory",
			Name:      "medicines_added_total",
			Help:      "Total catalogue entries added.",
		}),

		MedicinesRemovedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "inventory",
			Name:      "medicines_removed_total",
			Help:      "Total catalogue entries removed.",
		}),

		InventorySize: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "inventory",
			Name:      "size",
			Help:      "Current number of catalogue entries.",
		}),

		ScansTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "expiry",
			Name:      "scans_total",
			Help:      "Total expiry scans completed.",
		}),

		ScanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "expiry",
			Name:      "scan_duration_seconds",
			Help:      "Expiry scan latency distribution.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		ExpiredItemsGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "expiry",
			Name:      "expired_items",
			Help:      "Expired catalogue entries found by the most recent scan.",
		}),

		AuthFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Failed manager credential checks.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
