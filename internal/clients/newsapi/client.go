// Package newsapi provides a client for the NewsAPI top-headlines endpoint
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

const (
	DefaultBaseURL   = "https://newsapi.org"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the NewsAPIClient interface
type Client struct {
	client  *resty.Client
	apiKey  string
	logger  *common.Logger
	limiter *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.client.SetBaseURL(strings.TrimRight(baseURL, "/"))
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
		c.client.SetTimeout(timeout)
	}
}

// NewClient creates a new NewsAPI client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	rc := resty.New()
	rc.SetBaseURL(DefaultBaseURL)
	rc.SetTimeout(DefaultTimeout)
	rc.SetHeader("Accept", "application/json")

	c := &Client{
		client:  rc,
		apiKey:  apiKey,
		logger:  common.NewSilentLogger(),
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("NewsAPI error: %s %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

type headlinesResponse struct {
	Status       string    `json:"status"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type article struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// TopHeadlines retrieves headlines for a category and country
func (c *Client) TopHeadlines(ctx context.Context, category, country string, pageSize int) ([]models.NewsItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	c.logger.Debug().
		Str("category", category).
		Str("country", country).
		Int("page_size", pageSize).
		Msg("NewsAPI request")

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"category": category,
			"country":  country,
			"pageSize": strconv.Itoa(pageSize),
			"apiKey":   c.apiKey,
		}).
		Get("/v2/top-headlines")
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	var body headlinesResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if resp.IsError() {
			return nil, &APIError{StatusCode: resp.StatusCode(), Message: resp.String()}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.IsError() || (body.Status != "" && body.Status != "ok") {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Code:       body.Code,
			Message:    body.Message,
		}
	}

	items := make([]models.NewsItem, 0, len(body.Articles))
	for _, a := range body.Articles {
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			Source:      a.Source.Name,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}

// Ensure Client implements NewsAPIClient
var _ interfaces.NewsAPIClient = (*Client)(nil)
