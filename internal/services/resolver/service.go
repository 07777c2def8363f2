// Package resolver maps free text onto a market symbol.
//
// Resolution short-circuits on the first hit: exact alias match, then
// substring match in catalog precedence order, then the market provider's
// remote symbol search.
package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/bobmcallan/finchat/internal/catalog"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

// ErrNotFound is returned when no step produced a symbol
var ErrNotFound = errors.New("symbol not found")

// Searcher is the remote fallback used after local matching fails
type Searcher interface {
	SearchSymbol(ctx context.Context, keywords string) (string, error)
}

// Match records how a symbol was resolved
type Match struct {
	Symbol string
	Entry  *models.SymbolEntry // nil for remote matches
	Method string              // "exact", "substring" or "search"
}

// Service implements SymbolResolver
type Service struct {
	catalog  *catalog.Catalog
	searcher Searcher
	logger   *common.Logger
}

// NewService creates a resolver. searcher may be nil to disable remote search.
func NewService(cat *catalog.Catalog, searcher Searcher, logger *common.Logger) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		catalog:  cat,
		searcher: searcher,
		logger:   logger,
	}
}

// Resolve returns the best-guess symbol for query, or ErrNotFound
func (s *Service) Resolve(ctx context.Context, query string) (string, error) {
	m, err := s.ResolveMatch(ctx, query)
	if err != nil {
		return "", err
	}
	return m.Symbol, nil
}

// ResolveMatch is Resolve with the matching method reported
func (s *Service) ResolveMatch(ctx context.Context, query string) (*Match, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, ErrNotFound
	}

	if entry, ok := s.catalog.Lookup(normalized); ok {
		return &Match{Symbol: entry.Symbol, Entry: &entry, Method: "exact"}, nil
	}

	for _, entry := range s.catalog.Entries() {
		if strings.Contains(entry.Alias, normalized) || strings.Contains(normalized, entry.Alias) {
			return &Match{Symbol: entry.Symbol, Entry: &entry, Method: "substring"}, nil
		}
	}

	if s.searcher == nil {
		return nil, ErrNotFound
	}

	symbol, err := s.searcher.SearchSymbol(ctx, strings.TrimSpace(query))
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("Symbol search failed")
		return nil, ErrNotFound
	}
	if symbol == "" {
		return nil, ErrNotFound
	}

	s.logger.Debug().Str("query", query).Str("symbol", symbol).Msg("Resolved via symbol search")
	return &Match{Symbol: symbol, Method: "search"}, nil
}

// Ensure Service implements SymbolResolver
var _ interfaces.SymbolResolver = (*Service)(nil)
