package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/finchat/internal/models"
)

// LedgerStore persists manually recorded transactions.
// There is no update or delete.
type LedgerStore interface {
	// Init ensures the backing table exists. Safe to call repeatedly.
	Init(ctx context.Context) error

	// AddTransaction inserts one row. An empty date means today.
	AddTransaction(ctx context.Context, category string, amount decimal.Decimal, date string) error

	// GetAllTransactions returns every row ordered by date ascending
	GetAllTransactions(ctx context.Context) ([]models.Transaction, error)

	// Summary returns per-category totals
	Summary(ctx context.Context) (*models.LedgerSummary, error)
}
