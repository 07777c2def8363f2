package interfaces

import (
	"context"

	"github.com/bobmcallan/finchat/internal/models"
)

// MarketGateway serves cached quotes and forex rates
type MarketGateway interface {
	// GetQuote returns the quote for a symbol, served from cache within the TTL
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetForexRate returns the rate for a six-letter pair such as "USDINR"
	GetForexRate(ctx context.Context, pair string) (*models.ForexRate, error)

	// SearchSymbol returns the provider's best symbol match for free text
	SearchSymbol(ctx context.Context, keywords string) (string, error)
}

// NewsGateway serves cached headlines. GetHeadlines never returns nil.
type NewsGateway interface {
	GetHeadlines(ctx context.Context, category, country string, count int) []models.NewsItem
}

// SymbolResolver maps free text onto a market symbol
type SymbolResolver interface {
	Resolve(ctx context.Context, query string) (string, error)
}

// Composer turns a user query and context into an answer. It never fails.
type Composer interface {
	Compose(ctx context.Context, userQuery, contextData string) (text string, source string)
}

// ChatService runs the conversational pipeline over in-memory sessions
type ChatService interface {
	NewSession() string
	Ask(ctx context.Context, sessionID, prompt string) (*models.ChatReply, error)
	History(sessionID string) ([]models.ChatTurn, error)
	Reset(sessionID string) error
}

// OverviewService builds the market overview panels
type OverviewService interface {
	Snapshot(ctx context.Context) *models.MarketSnapshot
	Categories(ctx context.Context) []models.CategoryQuotes
	QuickQuote(ctx context.Context, query string) (*models.Quote, error)
}
