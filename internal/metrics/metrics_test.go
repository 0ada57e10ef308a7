package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/catalog/online", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/catalog/online", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/signin", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/signin", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/signin", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/signin", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/signin", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordRegistration(t *testing.T) {
	RegistrationsTotal.Reset()

	RecordRegistration("MINI", "paid")
	RecordRegistration("MINI", "paid")
	RecordRegistration("ONLINE", "free")

	paidMini := testutil.ToFloat64(RegistrationsTotal.WithLabelValues("MINI", "paid"))
	freeOnline := testutil.ToFloat64(RegistrationsTotal.WithLabelValues("ONLINE", "free"))

	assert.Equal(t, float64(2), paidMini)
	assert.Equal(t, float64(1), freeOnline)
}

func TestRecordCreditSpend(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "klture_credit_spends_total_test",
			Help: "Total number of credit ledger debits",
		},
	)

	oldCounter := CreditSpendsTotal
	CreditSpendsTotal = testCounter
	defer func() { CreditSpendsTotal = oldCounter }()

	RecordCreditSpend()
	RecordCreditSpend()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter))
}

func TestRecordCreditTopUp(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "klture_credit_topups_total_test",
			Help: "Total number of credit ledger top-ups",
		},
	)

	oldCounter := CreditTopUpsTotal
	CreditTopUpsTotal = testCounter
	defer func() { CreditTopUpsTotal = oldCounter }()

	RecordCreditTopUp()
	RecordCreditTopUp()
	RecordCreditTopUp()

	assert.Equal(t, float64(3), testutil.ToFloat64(testCounter))
}

func TestRecordLedgerWriteFailure(t *testing.T) {
	LedgerWriteFailuresTotal.Reset()

	RecordLedgerWriteFailure("spend")
	RecordLedgerWriteFailure("sales")
	RecordLedgerWriteFailure("sales")

	spend := testutil.ToFloat64(LedgerWriteFailuresTotal.WithLabelValues("spend"))
	sales := testutil.ToFloat64(LedgerWriteFailuresTotal.WithLabelValues("sales"))

	assert.Equal(t, float64(1), spend)
	assert.Equal(t, float64(2), sales)
}

func TestRecordFollow(t *testing.T) {
	FollowsTotal.Reset()

	RecordFollow("follow")
	RecordFollow("follow")
	RecordFollow("unfollow")

	follows := testutil.ToFloat64(FollowsTotal.WithLabelValues("follow"))
	unfollows := testutil.ToFloat64(FollowsTotal.WithLabelValues("unfollow"))

	assert.Equal(t, float64(2), follows)
	assert.Equal(t, float64(1), unfollows)
}

func TestRecordAIGeneration(t *testing.T) {
	AIGenerationsTotal.Reset()

	RecordAIGeneration("MARKETING", "success")
	RecordAIGeneration("MARKETING", "failed")
	RecordAIGeneration("SPY", "success")

	marketingSuccess := testutil.ToFloat64(AIGenerationsTotal.WithLabelValues("MARKETING", "success"))
	marketingFailed := testutil.ToFloat64(AIGenerationsTotal.WithLabelValues("MARKETING", "failed"))
	spySuccess := testutil.ToFloat64(AIGenerationsTotal.WithLabelValues("SPY", "success"))

	assert.Equal(t, float64(1), marketingSuccess)
	assert.Equal(t, float64(1), marketingFailed)
	assert.Equal(t, float64(1), spySuccess)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("enrollment_confirmation", "success")
	RecordEmail("enrollment_confirmation", "failed")

	success := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("enrollment_confirmation", "success"))
	failed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("enrollment_confirmation", "failed"))

	assert.Equal(t, float64(1), success)
	assert.Equal(t, float64(1), failed)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}
