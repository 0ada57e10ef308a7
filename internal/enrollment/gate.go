package enrollment

import (
	"klture/internal/catalog"

	"github.com/shopspring/decimal"
)

// Quote is the gate's verdict for one (program, balance) pair. It is a
// computed predicate only; nothing here mutates state.
type Quote struct {
	Program            string          `json:"program"`
	Price              decimal.Decimal `json:"price"`
	Balance            decimal.Decimal `json:"balance"`
	Authenticated      bool            `json:"authenticated"`
	HasSufficientFunds bool            `json:"has_sufficient_funds"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// Evaluate gates a registration on the caller's balance. Labels absent from
// the price map resolve to zero (unrecognized programs are treated as free).
// Anonymous callers are always reported as lacking funds, whatever the
// price, to force authentication first.
func Evaluate(prices catalog.PriceMap, label string, balance decimal.Decimal, authenticated bool) Quote {
	price := prices.Price(label)

	shortfall := price.Sub(balance)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return Quote{
		Program:            label,
		Price:              price,
		Balance:            balance,
		Authenticated:      authenticated,
		HasSufficientFunds: authenticated && balance.GreaterThanOrEqual(price),
		Shortfall:          shortfall,
	}
}
