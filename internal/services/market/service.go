// Package market provides the cached market data gateway: quotes, forex
// rates and symbol search backed by Alpha Vantage.
package market

import (
	"context"
	"time"

	"github.com/bobmcallan/finchat/internal/cache"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

// DefaultTTL is how long quotes and rates are served from cache
const DefaultTTL = 5 * time.Minute

// Service implements MarketGateway
type Service struct {
	client interfaces.AlphaVantageClient
	quotes *cache.TTL[string, models.Quote]
	rates  *cache.TTL[string, models.ForexRate]
	logger *common.Logger
}

// Option configures the service
type Option func(*options)

type options struct {
	ttl time.Duration
	now cache.Clock
}

// WithTTL sets the cache lifetime
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithClock sets the clock used for cache expiry
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewService creates a new market gateway.
// client may be nil; every call then fails with KindUnconfigured.
func NewService(client interfaces.AlphaVantageClient, logger *common.Logger, opts ...Option) *Service {
	o := &options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		client: client,
		quotes: cache.NewTTL[string, models.Quote](o.ttl, o.now),
		rates:  cache.NewTTL[string, models.ForexRate](o.ttl, o.now),
		logger: logger,
	}
}

// GetQuote returns the quote for a symbol. Failures are returned as
// *FetchError and are never cached, so the next call re-fetches.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	if q, ok := s.quotes.Get(symbol); ok {
		return &q, nil
	}

	if s.client == nil {
		return nil, &FetchError{Op: "quote", Key: symbol, Kind: KindUnconfigured}
	}

	quote, err := s.client.GetGlobalQuote(ctx, symbol)
	if err != nil {
		fe := newFetchError("quote", symbol, err)
		s.logger.Warn().Err(err).Str("symbol", symbol).Str("kind", string(fe.Kind)).Msg("Quote fetch failed")
		return nil, fe
	}

	s.quotes.Set(symbol, *quote)
	out := *quote
	return &out, nil
}

// GetForexRate returns the rate for a currency pair such as "USDINR".
// The pair is split into its first three characters and the rest.
func (s *Service) GetForexRate(ctx context.Context, pair string) (*models.ForexRate, error) {
	if r, ok := s.rates.Get(pair); ok {
		return &r, nil
	}

	if s.client == nil {
		return nil, &FetchError{Op: "forex", Key: pair, Kind: KindUnconfigured}
	}

	from, to := SplitPair(pair)
	rate, err := s.client.GetExchangeRate(ctx, from, to)
	if err != nil {
		fe := newFetchError("forex", pair, err)
		s.logger.Warn().Err(err).Str("pair", pair).Str("kind", string(fe.Kind)).Msg("Forex fetch failed")
		return nil, fe
	}

	s.rates.Set(pair, *rate)
	out := *rate
	return &out, nil
}

// SearchSymbol returns the first symbol of the provider's best matches
func (s *Service) SearchSymbol(ctx context.Context, keywords string) (string, error) {
	if s.client == nil {
		return "", &FetchError{Op: "search", Key: keywords, Kind: KindUnconfigured}
	}

	matches, err := s.client.SearchSymbols(ctx, keywords)
	if err != nil {
		return "", newFetchError("search", keywords, err)
	}
	if len(matches) == 0 || matches[0].Symbol == "" {
		return "", &FetchError{Op: "search", Key: keywords, Kind: KindEmpty}
	}
	return matches[0].Symbol, nil
}

// Purge drops expired quotes and rates, returning how many were removed
func (s *Service) Purge() int {
	return s.quotes.Purge() + s.rates.Purge()
}

// SplitPair splits a pair into base and quote currency codes.
// Pairs shorter than three characters yield an empty quote.
func SplitPair(pair string) (string, string) {
	if len(pair) <= 3 {
		return pair, ""
	}
	return pair[:3], pair[3:]
}

// Ensure Service implements MarketGateway
var _ interfaces.MarketGateway = (*Service)(nil)
