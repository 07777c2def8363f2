// Package common provides shared utilities for finchat
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for finchat
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Clients     ClientsConfig `toml:"clients"`
	Cache       CacheConfig   `toml:"cache"`
	News        NewsConfig    `toml:"news"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds storage configuration
type StorageConfig struct {
	Ledger AreaConfig `toml:"ledger"` // Transaction ledger (SQLite file)
}

// AreaConfig holds path configuration for a storage area.
type AreaConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	AlphaVantage AlphaVantageConfig `toml:"alphavantage"`
	NewsAPI      NewsAPIConfig      `toml:"newsapi"`
	Gemini       GeminiConfig       `toml:"gemini"`
}

// AlphaVantageConfig holds Alpha Vantage API configuration
type AlphaVantageConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *AlphaVantageConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// NewsAPIConfig holds NewsAPI configuration
type NewsAPIConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *NewsAPIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration.
// Models is tried in order; the first model that answers wins.
type GeminiConfig struct {
	APIKey  string   `toml:"api_key"`
	Models  []string `toml:"models"`
	Timeout string   `toml:"timeout"` // per request
	Budget  string   `toml:"budget"`  // whole model chain for one answer
}

// GetTimeout parses and returns the timeout duration
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetBudget parses the deadline shared by all candidate models.
// It must stay below the server write timeout.
func (c *GeminiConfig) GetBudget() time.Duration {
	d, err := time.ParseDuration(c.Budget)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// CacheConfig holds TTLs for the gateway caches
type CacheConfig struct {
	QuoteTTL string `toml:"quote_ttl"`
	NewsTTL  string `toml:"news_ttl"`
}

// GetQuoteTTL parses the quote/forex cache TTL
func (c *CacheConfig) GetQuoteTTL() time.Duration {
	d, err := time.ParseDuration(c.QuoteTTL)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// GetNewsTTL parses the headline cache TTL
func (c *CacheConfig) GetNewsTTL() time.Duration {
	d, err := time.ParseDuration(c.NewsTTL)
	if err != nil || d <= 0 {
		return 30 * time.Minute
	}
	return d
}

// NewsConfig holds the default headline query used for chat context
type NewsConfig struct {
	Category     string `toml:"category"`
	Country      string `toml:"country"`
	ContextCount int    `toml:"context_count"`
	PageCount    int    `toml:"page_count"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string   `toml:"level"`
	Format   string   `toml:"format"`
	Outputs  []string `toml:"outputs"`
	FilePath string   `toml:"file_path"`
}

// DefaultGeminiModels is the model preference order used when none is configured.
var DefaultGeminiModels = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro", "models/gemini-pro"}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Ledger: AreaConfig{Path: "data/finance.db"},
		},
		Clients: ClientsConfig{
			AlphaVantage: AlphaVantageConfig{
				BaseURL:   "https://www.alphavantage.co",
				RateLimit: 5,
				Timeout:   "10s",
			},
			NewsAPI: NewsAPIConfig{
				BaseURL:   "https://newsapi.org",
				RateLimit: 5,
				Timeout:   "10s",
			},
			Gemini: GeminiConfig{
				Models:  append([]string(nil), DefaultGeminiModels...),
				Timeout: "30s",
				Budget:  "60s",
			},
		},
		Cache: CacheConfig{
			QuoteTTL: "5m",
			NewsTTL:  "30m",
		},
		News: NewsConfig{
			Category:     "business",
			Country:      "us",
			ContextCount: 3,
			PageCount:    5,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "console",
			Outputs:  []string{"console"},
			FilePath: "./logs/finchat.log",
		},
	}
}

// LoadConfig loads configuration from files with .env and environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// .env never overrides variables already present in the process environment
	_ = godotenv.Load()

	applyEnvOverrides(config)

	if len(config.Clients.Gemini.Models) == 0 {
		config.Clients.Gemini.Models = append([]string(nil), DefaultGeminiModels...)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINCHAT_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINCHAT_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINCHAT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINCHAT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("FINCHAT_DATA_PATH"); path != "" {
		config.Storage.Ledger.Path = filepath.Join(path, "finance.db")
	}

	if v := firstEnv("ALPHA_VANTAGE_KEY", "FINCHAT_ALPHA_VANTAGE_KEY"); v != "" {
		config.Clients.AlphaVantage.APIKey = v
	}
	if v := firstEnv("NEWS_API_KEY", "FINCHAT_NEWS_API_KEY"); v != "" {
		config.Clients.NewsAPI.APIKey = v
	}
	if v := firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY", "FINCHAT_GEMINI_API_KEY"); v != "" {
		config.Clients.Gemini.APIKey = v
	}

	if models := os.Getenv("FINCHAT_GEMINI_MODELS"); models != "" {
		var list []string
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				list = append(list, m)
			}
		}
		if len(list) > 0 {
			config.Clients.Gemini.Models = list
		}
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// MissingKeys lists the API keys that are not configured. Each missing key
// degrades a feature rather than preventing startup.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Clients.Gemini.APIKey == "" {
		missing = append(missing, "gemini api_key")
	}
	if c.Clients.AlphaVantage.APIKey == "" {
		missing = append(missing, "alphavantage api_key")
	}
	if c.Clients.NewsAPI.APIKey == "" {
		missing = append(missing, "newsapi api_key")
	}
	return missing
}
