package models

import "github.com/shopspring/decimal"

// Transaction is a manually recorded ledger row
type Transaction struct {
	ID       int64           `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
}

// CategoryTotal aggregates ledger amounts per category
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// LedgerSummary is the per-category rollup of the ledger
type LedgerSummary struct {
	Categories []CategoryTotal `json:"categories"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}
