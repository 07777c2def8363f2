// Package news provides the cached headline gateway backed by NewsAPI.
package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/finchat/internal/cache"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

// DefaultTTL is how long a headline list is served from cache
const DefaultTTL = 30 * time.Minute

// Default query used when a caller leaves fields empty
const (
	DefaultCategory = "business"
	DefaultCountry  = "us"
	DefaultCount    = 5
)

// ErrUnconfigured is returned when no NewsAPI client is available
var ErrUnconfigured = errors.New("news client not configured")

type key struct {
	category string
	country  string
	count    int
}

// Service implements NewsGateway
type Service struct {
	client interfaces.NewsAPIClient
	cache  *cache.TTL[key, []models.NewsItem]
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

// NewService creates a new news gateway. client may be nil.
func NewService(client interfaces.NewsAPIClient, logger *common.Logger, opts ...Option) *Service {
	o := &options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		client: client,
		cache:  cache.NewTTL[key, []models.NewsItem](o.ttl, o.now),
		logger: logger,
	}
}

// FetchHeadlines returns headlines or the error that prevented fetching them.
// Successful results are cached per (category, country, count).
func (s *Service) FetchHeadlines(ctx context.Context, category, country string, count int) ([]models.NewsItem, error) {
	k := normalize(category, country, count)

	if items, ok := s.cache.Get(k); ok {
		return clone(items), nil
	}

	if s.client == nil {
		return nil, ErrUnconfigured
	}

	items, err := s.client.TopHeadlines(ctx, k.category, k.country, k.count)
	if err != nil {
		return nil, fmt.Errorf("top headlines %s/%s: %w", k.category, k.country, err)
	}
	if items == nil {
		items = []models.NewsItem{}
	}

	s.cache.Set(k, items)
	return clone(items), nil
}

// GetHeadlines returns headlines, or an empty slice on any failure.
// The cause is logged, never returned.
func (s *Service) GetHeadlines(ctx context.Context, category, country string, count int) []models.NewsItem {
	items, err := s.FetchHeadlines(ctx, category, country, count)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("category", category).
			Str("country", country).
			Int("count", count).
			Msg("Headlines unavailable")
		return []models.NewsItem{}
	}
	return items
}

// Purge drops expired headline lists, returning how many were removed
func (s *Service) Purge() int {
	return s.cache.Purge()
}

func normalize(category, country string, count int) key {
	if category == "" {
		category = DefaultCategory
	}
	if country == "" {
		country = DefaultCountry
	}
	if count <= 0 {
		count = DefaultCount
	}
	return key{category: category, country: country, count: count}
}

func clone(items []models.NewsItem) []models.NewsItem {
	out := make([]models.NewsItem, len(items))
	copy(out, items)
	return out
}

// Ensure Service implements NewsGateway
var _ interfaces.NewsGateway = (*Service)(nil)
