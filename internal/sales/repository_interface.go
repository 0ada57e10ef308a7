package sales

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Insert(ctx context.Context, userEmail, programTitle, category string, amount decimal.Decimal, note string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
