// Package alphavantage provides a client for the Alpha Vantage query API
package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

const (
	DefaultBaseURL   = "https://www.alphavantage.co"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

var (
	// ErrNoData is returned when the expected response object is missing or empty
	ErrNoData = errors.New("alphavantage: empty response")

	// ErrMalformed is returned when a response field cannot be parsed
	ErrMalformed = errors.New("alphavantage: malformed response")
)

// Client implements the AlphaVantageClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	now        func() time.Time
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithClock sets the clock used to stamp quotes
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new Alpha Vantage client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error. Alpha Vantage reports throttling and bad
// parameters with HTTP 200 and a "Note", "Information" or "Error Message" body.
type APIError struct {
	StatusCode int
	Message    string
	Function   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Alpha Vantage API error: %s (status: %d, function: %s)", e.Message, e.StatusCode, e.Function)
}

// query performs a rate-limited GET against /query and returns the raw top-level object
func (c *Client) query(ctx context.Context, function string, params url.Values) (map[string]json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("function", function)
	params.Set("apikey", c.apiKey)

	reqURL := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("function", function).Msg("Alpha Vantage API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Function:   function,
		}
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
	}

	for _, key := range []string{"Error Message", "Note", "Information"} {
		if msg, ok := raw[key]; ok {
			var text string
			_ = json.Unmarshal(msg, &text)
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    text,
				Function:   function,
			}
		}
	}

	return raw, nil
}

// labelled decodes a numbered-label object ({"05. price": "150.00", ...})
func labelled(raw map[string]json.RawMessage, key string) (map[string]string, error) {
	body, ok := raw[key]
	if !ok {
		return nil, ErrNoData
	}
	var fields map[string]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoData
	}
	return fields, nil
}

// parseDecimal parses a numeric field. Missing fields read as zero.
func parseDecimal(fields map[string]string, label string) (decimal.Decimal, error) {
	v, ok := fields[label]
	if !ok {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q", ErrMalformed, label, v)
	}
	return d, nil
}

// GetGlobalQuote retrieves the latest quote for a symbol
func (c *Client) GetGlobalQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	raw, err := c.query(ctx, "GLOBAL_QUOTE", url.Values{"symbol": {symbol}})
	if err != nil {
		return nil, err
	}

	fields, err := labelled(raw, "Global Quote")
	if err != nil {
		return nil, err
	}

	price, err := parseDecimal(fields, "05. price")
	if err != nil {
		return nil, err
	}
	change, err := parseDecimal(fields, "09. change")
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		Symbol:        symbol,
		Price:         price,
		Change:        change,
		ChangePercent: "0",
		Volume:        "N/A",
		ObservedAt:    c.now(),
	}
	if v := fields["01. symbol"]; v != "" {
		quote.Symbol = v
	}
	if v, ok := fields["10. change percent"]; ok {
		quote.ChangePercent = strings.TrimSpace(strings.ReplaceAll(v, "%", ""))
	}
	if v, ok := fields["06. volume"]; ok && v != "" {
		quote.Volume = v
	}

	return quote, nil
}

// GetExchangeRate retrieves a realtime currency exchange rate
func (c *Client) GetExchangeRate(ctx context.Context, from, to string) (*models.ForexRate, error) {
	raw, err := c.query(ctx, "CURRENCY_EXCHANGE_RATE", url.Values{
		"from_currency": {from},
		"to_currency":   {to},
	})
	if err != nil {
		return nil, err
	}

	fields, err := labelled(raw, "Realtime Currency Exchange Rate")
	if err != nil {
		return nil, err
	}

	rateValue, err := parseDecimal(fields, "5. Exchange Rate")
	if err != nil {
		return nil, err
	}

	return &models.ForexRate{
		Pair:          from + "/" + to,
		Rate:          rateValue,
		LastRefreshed: fields["6. Last Refreshed"],
	}, nil
}

type searchMatch struct {
	Symbol     string `json:"1. symbol"`
	Name       string `json:"2. name"`
	Type       string `json:"3. type"`
	Region     string `json:"4. region"`
	Currency   string `json:"8. currency"`
	MatchScore string `json:"9. matchScore"`
}

// SearchSymbols runs a keyword search and returns matches in provider order
func (c *Client) SearchSymbols(ctx context.Context, keywords string) ([]models.SymbolMatch, error) {
	raw, err := c.query(ctx, "SYMBOL_SEARCH", url.Values{"keywords": {keywords}})
	if err != nil {
		return nil, err
	}

	body, ok := raw["bestMatches"]
	if !ok {
		return nil, nil
	}

	var matches []searchMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, fmt.Errorf("%w: bestMatches: %v", ErrMalformed, err)
	}

	result := make([]models.SymbolMatch, 0, len(matches))
	for _, m := range matches {
		score, _ := decimal.NewFromString(m.MatchScore)
		result = append(result, models.SymbolMatch{
			Symbol:     m.Symbol,
			Name:       m.Name,
			Type:       m.Type,
			Region:     m.Region,
			Currency:   m.Currency,
			MatchScore: score.InexactFloat64(),
		})
	}
	return result, nil
}

// Ensure Client implements AlphaVantageClient
var _ interfaces.AlphaVantageClient = (*Client)(nil)
