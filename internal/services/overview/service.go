// Package overview builds the quick market overview panels and the quick
// quote lookup.
package overview

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/finchat/internal/catalog"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

// maxInFlight bounds concurrent gateway calls per request
const maxInFlight = 4

// Service implements OverviewService
type Service struct {
	market   interfaces.MarketGateway
	resolver interfaces.SymbolResolver
	logger   *common.Logger
	now      func() time.Time
}

// NewService creates an overview service
func NewService(market interfaces.MarketGateway, resolver interfaces.SymbolResolver, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		market:   market,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Snapshot fetches the overview watchlists. Entries that fail are omitted;
// the rest keep watchlist order.
func (s *Service) Snapshot(ctx context.Context) *models.MarketSnapshot {
	snap := &models.MarketSnapshot{
		Indices:     []*models.Quote{},
		Currencies:  []*models.ForexRate{},
		Commodities: []*models.Quote{},
		GeneratedAt: s.now(),
	}

	var (
		indices     []*models.Quote
		currencies  = make([]*models.ForexRate, len(catalog.OverviewForexPairs))
		commodities []*models.Quote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	g.Go(func() error {
		indices = s.quotes(gctx, catalog.OverviewIndices)
		return nil
	})
	g.Go(func() error {
		commodities = s.quotes(gctx, catalog.OverviewCommodities)
		return nil
	})
	for i, pair := range catalog.OverviewForexPairs {
		g.Go(func() error {
			rate, err := s.market.GetForexRate(gctx, pair)
			if err != nil {
				s.logger.Warn().Err(err).Str("pair", pair).Msg("Overview rate omitted")
				return nil
			}
			currencies[i] = rate
			return nil
		})
	}
	_ = g.Wait()

	snap.Indices = append(snap.Indices, indices...)
	snap.Commodities = append(snap.Commodities, commodities...)
	for _, r := range currencies {
		if r != nil {
			snap.Currencies = append(snap.Currencies, r)
		}
	}
	return snap
}

// Categories fetches the popular category watchlists in their fixed order
func (s *Service) Categories(ctx context.Context) []models.CategoryQuotes {
	lists := catalog.PopularCategories()
	out := make([]models.CategoryQuotes, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for i, wl := range lists {
		g.Go(func() error {
			out[i] = models.CategoryQuotes{Name: wl.Name, Quotes: s.quotes(gctx, wl.Symbols)}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// QuickQuote resolves free text and returns the quote for it
func (s *Service) QuickQuote(ctx context.Context, query string) (*models.Quote, error) {
	symbol, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.market.GetQuote(ctx, symbol)
}

// quotes fetches symbols sequentially, skipping failures
func (s *Service) quotes(ctx context.Context, symbols []string) []*models.Quote {
	out := make([]*models.Quote, 0, len(symbols))
	for _, sym := range symbols {
		q, err := s.market.GetQuote(ctx, sym)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", sym).Msg("Overview quote omitted")
			continue
		}
		out = append(out, q)
	}
	return out
}

// Ensure Service implements OverviewService
var _ interfaces.OverviewService = (*Service)(nil)
