package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a denormalized reporting row written alongside a credit debit.
// It is not the source of truth for balances; the credit ledger is. The two
// can diverge when one write fails, which is what the reconciliation
// counters exist to catch.
type Record struct {
	ID           int             `db:"id" json:"id"`
	UserEmail    string          `db:"user_email" json:"user_email"`
	ProgramTitle string          `db:"program_title" json:"program_title"`
	Category     string          `db:"category" json:"category"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	Note         string          `db:"note" json:"note,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}
