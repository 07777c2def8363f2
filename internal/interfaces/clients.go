// Package interfaces defines service contracts for finchat
package interfaces

import (
	"context"

	"github.com/bobmcallan/finchat/internal/models"
)

// AlphaVantageClient provides access to the Alpha Vantage query API
type AlphaVantageClient interface {
	// GetGlobalQuote retrieves the latest quote for a symbol (function=GLOBAL_QUOTE)
	GetGlobalQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetExchangeRate retrieves a realtime currency rate (function=CURRENCY_EXCHANGE_RATE)
	GetExchangeRate(ctx context.Context, from, to string) (*models.ForexRate, error)

	// SearchSymbols runs a keyword symbol search (function=SYMBOL_SEARCH)
	SearchSymbols(ctx context.Context, keywords string) ([]models.SymbolMatch, error)
}

// NewsAPIClient provides access to the NewsAPI top-headlines endpoint
type NewsAPIClient interface {
	// TopHeadlines retrieves headlines for a category and country
	TopHeadlines(ctx context.Context, category, country string, pageSize int) ([]models.NewsItem, error)
}

// GeminiClient provides text generation
type GeminiClient interface {
	// GenerateContent generates text from a prompt using the named model
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}
