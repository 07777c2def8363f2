// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
)

const (
	DefaultTimeout = 30 * time.Second
)

// ErrNoContent is returned when the model produced no text
var ErrNoContent = errors.New("gemini: no content generated")

// Client implements the GeminiClient interface
type Client struct {
	client  *genai.Client
	timeout time.Duration
	logger  *common.Logger
}

type clientConfig struct {
	baseURL string
	timeout time.Duration
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*clientConfig)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each generation call
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: DefaultTimeout,
		logger:  common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	genaiConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		genaiConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}

	genaiClient, err := genai.NewClient(ctx, genaiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:  genaiClient,
		timeout: cfg.timeout,
		logger:  cfg.logger,
	}, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// GenerateContent generates text from a prompt using the named model
func (c *Client) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	c.logger.Debug().Str("model", model).Int("prompt_len", len(prompt)).Msg("Generating content")

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content with %s: %w", model, err)
	}

	return extractTextFromResponse(result)
}

// extractTextFromResponse concatenates the text parts of the first candidate
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// Ensure Client implements GeminiClient
var _ interfaces.GeminiClient = (*Client)(nil)
