package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Leads extracted from thank-you page parameters",
		},
		[]string{"source"},
	)

	webhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Finished webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	webhookDeliveryAttempts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_delivery_attempts_total",
			Help: "Individual webhook POST attempts, including retries",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Errors talking to upstream services",
		},
		[]string{"service"},
	)
)

func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

// RecordDelivery counts a finished delivery. outcome is "delivered" or
// "exhausted".
func RecordDelivery(outcome string) {
	webhookDeliveries.WithLabelValues(outcome).Inc()
}

func RecordDeliveryAttempt() {
	webhookDeliveryAttempts.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
