package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path"},
	)
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests in flight",
		},
	)

	// Payment metrics
	PaymentChargesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_charges_total",
			Help: "Total number of payment charge attempts",
		},
		[]string{"gateway", "status"},
	)

	// Entitlement metrics
	EntitlementChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entitlement_checks_total",
			Help: "Total number of feature gate checks",
		},
		[]string{"tier", "result"},
	)
	SubscriptionsByPlan = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "subscriptions_by_plan",
			Help: "Number of stored subscriptions per plan",
		},
		[]string{"plan"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestsInFlight)

	prometheus.MustRegister(PaymentChargesTotal)

	prometheus.MustRegister(EntitlementChecksTotal)
	prometheus.MustRegister(SubscriptionsByPlan)

	prometheus.MustRegister(prometheus.NewGoCollector())
	prometheus.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
}
