package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	reservationsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posada",
			Name:      "reservations_created_total",
			Help:      "Count of reservations submitted to the backend, by outcome.",
		},
		[]string{"outcome"},
	)

	bookingRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posada",
			Name:      "booking_rejected_total",
			Help:      "Count of bookings rejected before submission, by reason.",
		},
		[]string{"reason"},
	)

	gateDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posada",
			Name:      "auth_gate_decisions_total",
			Help:      "Count of auth gate evaluations by resulting state.",
		},
		[]string{"state"},
	)

	backendErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "posada",
			Name:      "backend_errors_total",
			Help:      "Count of failed backend API calls, by kind.",
		},
		[]string{"kind"},
	)
)

// RegisterMetrics registers metrics (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(reservationsCreated, bookingRejections, gateDecisions, backendErrors)
	})
}

func IncReservationCreated(outcome string) {
	reservationsCreated.WithLabelValues(outcome).Inc()
}

func IncBookingRejected(reason string) {
	bookingRejections.WithLabelValues(reason).Inc()
}

func IncGateDecision(state string) {
	gateDecisions.WithLabelValues(state).Inc()
}

func IncBackendError(kind string) {
	backendErrors.WithLabelValues(kind).Inc()
}
