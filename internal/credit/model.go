package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindTopUp      = "topup"
	KindSpend      = "spend"
	KindAdjustment = "adjustment"
)

// Entry is one append-only credit ledger row. Entries are never mutated or
// deleted; the sum of a member's entries is their spendable balance.
type Entry struct {
	ID        int             `db:"id" json:"id"`
	UserEmail string          `db:"user_email" json:"user_email"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Kind      string          `db:"kind" json:"kind"`
	Note      string          `db:"note" json:"note,omitempty"`
	CreatedBy string          `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type TopUpRequest struct {
	UserEmail string          `json:"user_email" binding:"required,email"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Note      string          `json:"note"`
}

type AdjustRequest struct {
	UserEmail string          `json:"user_email" binding:"required,email"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Note      string          `json:"note"`
}

type BalanceResponse struct {
	UserEmail string          `json:"user_email"`
	Balance   decimal.Decimal `json:"balance"`
}
