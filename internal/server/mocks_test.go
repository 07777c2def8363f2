package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bobmcallan/finchat/internal/app"
	"github.com/bobmcallan/finchat/internal/catalog"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/models"
	"github.com/bobmcallan/finchat/internal/services/chat"
	"github.com/bobmcallan/finchat/internal/services/composer"
	"github.com/bobmcallan/finchat/internal/services/market"
	"github.com/bobmcallan/finchat/internal/services/news"
	"github.com/bobmcallan/finchat/internal/services/overview"
	"github.com/bobmcallan/finchat/internal/services/resolver"
	"github.com/bobmcallan/finchat/internal/storage/ledger"
)

var errOffline = errors.New("dial tcp: network is unreachable")

// mockAlphaVantage serves quotes and rates from maps; anything else is offline.
type mockAlphaVantage struct {
	quotes map[string]*models.Quote
	rates  map[string]*models.ForexRate
	search map[string]string
}

func (m *mockAlphaVantage) GetGlobalQuote(_ context.Context, symbol string) (*models.Quote, error) {
	if q, ok := m.quotes[symbol]; ok {
		out := *q
		return &out, nil
	}
	return nil, errOffline
}

func (m *mockAlphaVantage) GetExchangeRate(_ context.Context, from, to string) (*models.ForexRate, error) {
	if r, ok := m.rates[from+to]; ok {
		out := *r
		return &out, nil
	}
	return nil, errOffline
}

func (m *mockAlphaVantage) SearchSymbols(_ context.Context, keywords string) ([]models.SymbolMatch, error) {
	if sym, ok := m.search[keywords]; ok {
		return []models.SymbolMatch{{Symbol: sym}}, nil
	}
	return nil, errOffline
}

type mockNewsAPI struct {
	items []models.NewsItem
	err   error
	calls [][3]interface{}
}

func (m *mockNewsAPI) TopHeadlines(_ context.Context, category, country string, pageSize int) ([]models.NewsItem, error) {
	m.calls = append(m.calls, [3]interface{}{category, country, pageSize})
	if m.err != nil {
		return nil, m.err
	}
	if pageSize < len(m.items) {
		return m.items[:pageSize], nil
	}
	return m.items, nil
}

// newTestServer wires real services over mocked provider clients.
func newTestServer(t *testing.T, av *mockAlphaVantage, newsClient *mockNewsAPI) *Server {
	t.Helper()
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()

	if av == nil {
		av = &mockAlphaVantage{}
	}
	if newsClient == nil {
		newsClient = &mockNewsAPI{}
	}

	store, err := ledger.NewStore(logger, filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("ledger.NewStore: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("ledger Init: %v", err)
	}

	mkt := market.NewService(av, logger)
	headlines := news.NewService(newsClient, logger)
	res := resolver.NewService(catalog.Default(), mkt, logger)
	comp := composer.NewService(nil, nil, res, mkt, logger)

	a := &app.App{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog.Default(),
		Market:   mkt,
		News:     headlines,
		Resolver: res,
		Composer: comp,
		Chat: chat.NewService(res, mkt, headlines, comp, chat.NewsContext{
			Category: cfg.News.Category,
			Country:  cfg.News.Country,
			Count:    cfg.News.ContextCount,
		}, logger),
		Overview: overview.NewService(mkt, res, logger),
		Ledger:   store,
	}
	return NewServer(a)
}
