package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/finchat/internal/catalog"
	"github.com/bobmcallan/finchat/internal/clients/alphavantage"
	"github.com/bobmcallan/finchat/internal/clients/gemini"
	"github.com/bobmcallan/finchat/internal/clients/newsapi"
	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/services/chat"
	"github.com/bobmcallan/finchat/internal/services/composer"
	"github.com/bobmcallan/finchat/internal/services/market"
	"github.com/bobmcallan/finchat/internal/services/news"
	"github.com/bobmcallan/finchat/internal/services/overview"
	"github.com/bobmcallan/finchat/internal/services/resolver"
	"github.com/bobmcallan/finchat/internal/storage/ledger"
)

// App holds all initialized clients, services and storage.
// It is the shared core used by cmd/finchat-server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Catalog     *catalog.Catalog
	Market      interfaces.MarketGateway
	News        interfaces.NewsGateway
	Resolver    interfaces.SymbolResolver
	Composer    interfaces.Composer
	Chat        interfaces.ChatService
	Overview    interfaces.OverviewService
	Ledger      interfaces.LedgerStore
	StartupTime time.Time

	janitorCancel context.CancelFunc
	warmCancel    context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and initializes the application.
// configPath may be empty, in which case FINCHAT_CONFIG, the binary directory
// and config/finchat.toml are tried in that order.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("FINCHAT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "finchat.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finchat.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative paths to the binary directory
	if config.Storage.Ledger.Path != "" && !filepath.IsAbs(config.Storage.Ledger.Path) {
		config.Storage.Ledger.Path = filepath.Join(binDir, config.Storage.Ledger.Path)
	}
	if config.Logging.FilePath != "" && !filepath.IsAbs(config.Logging.FilePath) {
		config.Logging.FilePath = filepath.Join(binDir, config.Logging.FilePath)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	return NewAppWithConfig(context.Background(), config, logger)
}

// NewAppWithConfig wires clients and services from an already loaded config.
// Missing API keys are warnings: the affected feature degrades instead.
func NewAppWithConfig(ctx context.Context, config *common.Config, logger *common.Logger) (*App, error) {
	startupStart := time.Now()
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	var avClient interfaces.AlphaVantageClient
	if key := config.Clients.AlphaVantage.APIKey; key != "" {
		avClient = alphavantage.NewClient(key,
			alphavantage.WithBaseURL(config.Clients.AlphaVantage.BaseURL),
			alphavantage.WithLogger(logger),
			alphavantage.WithRateLimit(config.Clients.AlphaVantage.RateLimit),
			alphavantage.WithTimeout(config.Clients.AlphaVantage.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("Alpha Vantage API key not configured - market data will be unavailable")
	}

	var newsClient interfaces.NewsAPIClient
	if key := config.Clients.NewsAPI.APIKey; key != "" {
		newsClient = newsapi.NewClient(key,
			newsapi.WithBaseURL(config.Clients.NewsAPI.BaseURL),
			newsapi.WithLogger(logger),
			newsapi.WithRateLimit(config.Clients.NewsAPI.RateLimit),
			newsapi.WithTimeout(config.Clients.NewsAPI.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("News API key not configured - headlines will be empty")
	}

	var geminiClient interfaces.GeminiClient
	if key := config.Clients.Gemini.APIKey; key != "" {
		gc, err := gemini.NewClient(ctx, key,
			gemini.WithLogger(logger),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client - answers will use fallback mode")
		} else {
			geminiClient = gc
		}
	} else {
		logger.Warn().Msg("Google API key not configured - answers will use fallback mode")
	}

	ledgerStore, err := ledger.NewStore(logger, config.Storage.Ledger.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}
	if err := ledgerStore.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}

	cat := catalog.Default()
	marketService := market.NewService(avClient, logger, market.WithTTL(config.Cache.GetQuoteTTL()))
	newsService := news.NewService(newsClient, logger, news.WithTTL(config.Cache.GetNewsTTL()))
	resolverService := resolver.NewService(cat, marketService, logger)
	composerService := composer.NewService(geminiClient, config.Clients.Gemini.Models, resolverService, marketService, logger,
		composer.WithBudget(config.Clients.Gemini.GetBudget()))
	chatService := chat.NewService(resolverService, marketService, newsService, composerService,
		chat.NewsContext{
			Category: config.News.Category,
			Country:  config.News.Country,
			Count:    config.News.ContextCount,
		}, logger)
	overviewService := overview.NewService(marketService, resolverService, logger)

	a := &App{
		Config:      config,
		Logger:      logger,
		Catalog:     cat,
		Market:      marketService,
		News:        newsService,
		Resolver:    resolverService,
		Composer:    composerService,
		Chat:        chatService,
		Overview:    overviewService,
		Ledger:      ledgerStore,
		StartupTime: startupStart,
	}

	logger.Info().
		Int("aliases", cat.Len()).
		Strs("models", config.Clients.Gemini.Models).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// Close stops background goroutines.
func (a *App) Close() {
	if a.warmCancel != nil {
		a.warmCancel()
	}
	if a.janitorCancel != nil {
		a.janitorCancel()
	}
}

// StartWarmCache pre-fetches the market overview in the background.
func (a *App) StartWarmCache() {
	ctx, cancel := context.WithCancel(context.Background())
	a.warmCancel = cancel
	go warmCache(ctx, a.Overview, a.Logger)
}

// StartCacheJanitor purges expired cache entries every interval.
func (a *App) StartCacheJanitor(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	a.janitorCancel = cancel
	var caches []purger
	for _, svc := range []any{a.Market, a.News} {
		if p, ok := svc.(purger); ok {
			caches = append(caches, p)
		}
	}
	go startCacheJanitor(ctx, caches, a.Logger, interval)
}
