package expenses

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
	statusMiss  = "miss"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expenses_operations_total",
			Help: "Expense operations by outcome.",
		},
		[]string{"op", "status"},
	)

	histogramOperationTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "expenses_operation_duration_seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"op"},
	)
)

func observeOperation(op, status string, elapsed time.Duration) {
	operationsTotal.WithLabelValues(op, status).Inc()
	histogramOperationTime.WithLabelValues(op).Observe(elapsed.Seconds())
}
