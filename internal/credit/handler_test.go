package credit

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReceiptSender struct {
	err   error
	calls []struct{ to, name, amount string }
}

func (f *fakeReceiptSender) SendTopUpReceipt(_ context.Context, to, name, amount string) error {
	f.calls = append(f.calls, struct{ to, name, amount string }{to, name, amount})
	return f.err
}

func newTopUpRouter(t *testing.T, sender ReceiptSender, names NameLookup) (*gin.Engine, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(sqlxDB, sender, names)
	router.POST("/admin/credits/topup", handler.TopUp)

	closer := func() { sqlxDB.Close() }
	return router, mock, closer
}

func expectTopUpWrites(mock sqlmock.Sqlmock, email string) {
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO credit_transactions (user_email, amount, kind, note, created_by)")).
		WithArgs(email, decimal.NewFromInt(50), "topup", "telegram topup", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_email", "amount", "kind", "note", "created_by", "created_at"}).
			AddRow(1, email, "50", "topup", "telegram topup", "", time.Now()))

	// Balance refresh after the write.
	mock.ExpectQuery("SELECT id, user_email, amount, kind, note, created_by, created_at FROM credit_transactions").
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_email", "amount", "kind", "note", "created_by", "created_at"}).
			AddRow(1, email, "50", "topup", "telegram topup", "", time.Now()))
}

func TestTopUpHandler_QueuesReceipt(t *testing.T) {
	sender := &fakeReceiptSender{}
	names := func(_ context.Context, email string) (string, bool) {
		return "Dara Chan", true
	}
	router, mock, close := newTopUpRouter(t, sender, names)
	defer close()

	expectTopUpWrites(mock, "member@example.com")

	body := []byte(`{"user_email":"member@example.com","amount":50,"note":"telegram topup"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/credits/topup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "member@example.com", sender.calls[0].to)
	assert.Equal(t, "Dara Chan", sender.calls[0].name)
	assert.Equal(t, "50.00", sender.calls[0].amount)
}

func TestTopUpHandler_ReceiptFailureDoesNotFailTopUp(t *testing.T) {
	sender := &fakeReceiptSender{err: assert.AnError}
	names := func(_ context.Context, email string) (string, bool) {
		return "", false
	}
	router, mock, close := newTopUpRouter(t, sender, names)
	defer close()

	expectTopUpWrites(mock, "member@example.com")

	body := []byte(`{"user_email":"member@example.com","amount":50,"note":"telegram topup"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/credits/topup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// Unknown member falls back to the email as the salutation.
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "member@example.com", sender.calls[0].name)
}

func TestTopUpHandler_RejectsNonPositiveAmount(t *testing.T) {
	sender := &fakeReceiptSender{}
	router, _, close := newTopUpRouter(t, sender, nil)
	defer close()

	body := []byte(`{"user_email":"member@example.com","amount":-5}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/credits/topup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.calls)
}
