package sales

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, userEmail, programTitle, category string, amount decimal.Decimal, note string) (*Record, error) {
	query := `
		INSERT INTO sales_records (user_email, program_title, category, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_email, program_title, category, amount, note, created_at
	`

	var rec Record
	err := r.db.GetContext(ctx, &rec, query, userEmail, programTitle, category, amount, note)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, user_email, program_title, category, amount, note, created_at
		FROM sales_records
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var records []Record
	err := r.db.SelectContext(ctx, &records, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return records, nil
}
