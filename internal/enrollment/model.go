package enrollment

import (
	"time"

	"klture/internal/catalog"

	"github.com/shopspring/decimal"
)

// Registration is one enrollment row. The same table backs sign-up: an
// account is simply a member's latest registration, so a member who bought
// several programs has several rows.
type Registration struct {
	ID               int       `db:"id" json:"id"`
	FullName         string    `db:"full_name" json:"full_name"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	TelegramUsername string    `db:"telegram_username" json:"telegram_username,omitempty"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     *string   `db:"password_hash" json:"-"`
	Program          string    `db:"program" json:"program"`
	PreferredDate    string    `db:"preferred_date" json:"preferred_date,omitempty"`
	Message          string    `db:"message" json:"message,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type RegisterInput struct {
	FullName         string `json:"full_name" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	TelegramUsername string `json:"telegram_username"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password"`
	Program          string `json:"program"`
	PreferredDate    string `json:"preferred_date"`
	Message          string `json:"message"`
}

// Outcome summarizes which of the independent writes landed. A paid
// registration with LedgerWritten or SalesWritten false is in the
// "paid but unledgered" state and needs operator reconciliation.
type Outcome struct {
	Registration  *Registration    `json:"registration"`
	Category      catalog.Category `json:"category,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Paid          bool             `json:"paid"`
	LedgerWritten bool             `json:"ledger_written"`
	SalesWritten  bool             `json:"sales_written"`
}
