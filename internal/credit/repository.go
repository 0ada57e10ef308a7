package credit

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrAmountNotPositive = errors.New("amount must be positive")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListEntries(ctx context.Context, userEmail string) ([]Entry, error) {
	query := `
		SELECT id, user_email, amount, kind, note, created_by, created_at
		FROM credit_transactions
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, query, userEmail)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) InsertEntry(ctx context.Context, userEmail string, amount decimal.Decimal, kind, note, createdBy string) (*Entry, error) {
	query := `
		INSERT INTO credit_transactions (user_email, amount, kind, note, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_email, amount, kind, note, created_by, created_at
	`

	var e Entry
	err := r.db.GetContext(ctx, &e, query, userEmail, amount, kind, note, createdBy)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) TopUp(ctx context.Context, userEmail string, amount decimal.Decimal, note, createdBy string) (*Entry, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	return r.InsertEntry(ctx, userEmail, amount, KindTopUp, note, createdBy)
}

// Spend records a debit: the stored amount is the negated price.
func (r *repository) Spend(ctx context.Context, userEmail string, price decimal.Decimal, note string) (*Entry, error) {
	if !price.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	return r.InsertEntry(ctx, userEmail, price.Neg(), KindSpend, note, userEmail)
}

func (r *repository) Adjust(ctx context.Context, userEmail string, amount decimal.Decimal, note, createdBy string) (*Entry, error) {
	return r.InsertEntry(ctx, userEmail, amount, KindAdjustment, note, createdBy)
}
