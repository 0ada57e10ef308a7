package credit

import (
	"context"
	"sync"

	"klture/internal/logger"

	"github.com/shopspring/decimal"
)

// Balance sums the signed amounts of a set of ledger entries. Top-ups are
// positive, spends negative, adjustments either sign. The empty set sums
// to zero.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Reader derives spendable balances from the ledger on demand. Nothing is
// stored: every read re-sums the member's entries. When the ledger fetch
// fails the reader logs the error and serves the previously computed value
// for that email, so callers never see an error, only possible staleness.
type Reader struct {
	repo Repository

	mu       sync.RWMutex
	lastGood map[string]decimal.Decimal
}

func NewReader(repo Repository) *Reader {
	return &Reader{
		repo:     repo,
		lastGood: make(map[string]decimal.Decimal),
	}
}

// Balance returns the current balance for an email. An empty identifier is
// answered with zero without touching the store.
func (r *Reader) Balance(ctx context.Context, userEmail string) decimal.Decimal {
	if userEmail == "" {
		return decimal.Zero
	}

	entries, err := r.repo.ListEntries(ctx, userEmail)
	if err != nil {
		logger.Errorf("failed to fetch credit ledger for %s: %v", userEmail, err)

		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.lastGood[userEmail]
	}

	total := Balance(entries)

	r.mu.Lock()
	r.lastGood[userEmail] = total
	r.mu.Unlock()

	return total
}

// Refresh recomputes the balance after a mutation. It is the explicit
// post-payment trigger; semantically identical to Balance but named so call
// sites read as intent.
func (r *Reader) Refresh(ctx context.Context, userEmail string) decimal.Decimal {
	return r.Balance(ctx, userEmail)
}
