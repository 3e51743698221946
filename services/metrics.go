package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lifecycleOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "frontdesk",
	Name:      "lifecycle_operations_total",
	Help:      "Reservation lifecycle and housekeeping operations by outcome.",
}, []string{"operation", "result"})

func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	lifecycleOps.WithLabelValues(op, result).Inc()
}
