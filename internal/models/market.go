// Package models defines data structures for finchat
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetClass partitions the symbol catalog
type AssetClass string

const (
	AssetEquityUS       AssetClass = "equity-us"
	AssetEquityRegional AssetClass = "equity-regional"
	AssetIndex          AssetClass = "index"
	AssetCommodity      AssetClass = "commodity"
	AssetForex          AssetClass = "forex"
	AssetCrypto         AssetClass = "crypto"
)

// SymbolEntry maps a lowercase alias to a market symbol
type SymbolEntry struct {
	Alias      string     `json:"alias"`
	Symbol     string     `json:"symbol"`
	AssetClass AssetClass `json:"asset_class"`
}

// Quote is a point-in-time price observation for a symbol.
// ChangePercent is kept as the provider's text without the trailing "%".
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent string          `json:"change_percent"`
	Volume        string          `json:"volume"`
	ObservedAt    time.Time       `json:"observed_at"`
}

// IsGain reports whether the quote moved up or stayed flat
func (q *Quote) IsGain() bool {
	return !q.Change.IsNegative()
}

// ForexRate is a currency pair exchange rate
type ForexRate struct {
	Pair          string          `json:"pair"` // "FROM/TO"
	Rate          decimal.Decimal `json:"rate"`
	LastRefreshed string          `json:"last_refreshed"`
}

// NewsItem represents a news headline
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// MarketSnapshot is the quick market overview: major indices, currency
// rates and commodities. Entries that could not be fetched are omitted.
type MarketSnapshot struct {
	Indices     []*Quote     `json:"indices"`
	Currencies  []*ForexRate `json:"currencies"`
	Commodities []*Quote     `json:"commodities"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Watchlist is a named group of symbols
type Watchlist struct {
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

// CategoryQuotes holds the quotes fetched for one watchlist
type CategoryQuotes struct {
	Name   string   `json:"name"`
	Quotes []*Quote `json:"quotes"`
}

// SymbolMatch is one result of a provider symbol search
type SymbolMatch struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Region     string  `json:"region"`
	Currency   string  `json:"currency"`
	MatchScore float64 `json:"match_score"`
}
