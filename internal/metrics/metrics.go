package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "klture_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_registrations_total",
			Help: "Total number of program registrations",
		},
		[]string{"category", "outcome"},
	)

	CreditSpendsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "klture_credit_spends_total",
			Help: "Total number of credit ledger debits",
		},
	)

	CreditTopUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "klture_credit_topups_total",
			Help: "Total number of credit ledger top-ups",
		},
	)

	// LedgerWriteFailuresTotal counts spend or sales rows that failed to
	// land after a registration was already written. These registrations
	// need manual reconciliation.
	LedgerWriteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_ledger_write_failures_total",
			Help: "Ledger or sales-ledger writes that failed after registration",
		},
		[]string{"step"},
	)

	FollowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_follows_total",
			Help: "Total number of follow and unfollow actions",
		},
		[]string{"action"},
	)

	AIGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_ai_generations_total",
			Help: "Total number of AI tool generations",
		},
		[]string{"tool", "status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "klture_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "klture_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(category, outcome string) {
	RegistrationsTotal.WithLabelValues(category, outcome).Inc()
}

func RecordCreditSpend() {
	CreditSpendsTotal.Inc()
}

func RecordCreditTopUp() {
	CreditTopUpsTotal.Inc()
}

func RecordLedgerWriteFailure(step string) {
	LedgerWriteFailuresTotal.WithLabelValues(step).Inc()
}

func RecordFollow(action string) {
	FollowsTotal.WithLabelValues(action).Inc()
}

func RecordAIGeneration(tool, status string) {
	AIGenerationsTotal.WithLabelValues(tool, status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
