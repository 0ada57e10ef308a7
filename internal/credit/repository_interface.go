package credit

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	ListEntries(ctx context.Context, userEmail string) ([]Entry, error)
	InsertEntry(ctx context.Context, userEmail string, amount decimal.Decimal, kind, note, createdBy string) (*Entry, error)
	TopUp(ctx context.Context, userEmail string, amount decimal.Decimal, note, createdBy string) (*Entry, error)
	Spend(ctx context.Context, userEmail string, price decimal.Decimal, note string) (*Entry, error)
	Adjust(ctx context.Context, userEmail string, amount decimal.Decimal, note, createdBy string) (*Entry, error)
}
