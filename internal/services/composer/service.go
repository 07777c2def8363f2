// Package composer produces the assistant's answer: a Gemini generation over an
// ordered list of candidate models, with a deterministic keyword-template
// fallback when generation is unavailable.
package composer

import (
	"context"
	"strings"
	"time"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
)

// Answer sources reported alongside composed text
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// DefaultBudget bounds the whole model chain for one answer
const DefaultBudget = 60 * time.Second

// Service implements Composer
type Service struct {
	gemini   interfaces.GeminiClient
	models   []string
	resolver interfaces.SymbolResolver
	market   interfaces.MarketGateway
	logger   *common.Logger
	budget   time.Duration
}

// Option configures the composer
type Option func(*Service)

// WithBudget sets the deadline shared by every candidate model of one answer.
// Zero or negative leaves the chain bounded only by the caller's context.
func WithBudget(d time.Duration) Option {
	return func(s *Service) {
		s.budget = d
	}
}

// NewService creates a composer.
// gemini may be nil, in which case every answer comes from the fallback.
// resolver and market feed the price template; either may be nil.
func NewService(gemini interfaces.GeminiClient, models []string, resolver interfaces.SymbolResolver, market interfaces.MarketGateway, logger *common.Logger, opts ...Option) *Service {
	if len(models) == 0 {
		models = common.DefaultGeminiModels
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	s := &Service{
		gemini:   gemini,
		models:   append([]string(nil), models...),
		resolver: resolver,
		market:   market,
		logger:   logger,
		budget:   DefaultBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compose answers userQuery using contextData. It never fails: when no model
// produces text the fallback answer is returned with SourceFallback.
func (s *Service) Compose(ctx context.Context, userQuery, contextData string) (string, string) {
	if text, ok := s.generate(ctx, userQuery, contextData); ok {
		return text, SourceModel
	}
	return s.Fallback(ctx, userQuery, contextData), SourceFallback
}

// generate tries each candidate model in order and returns the first answer.
// A failed generation moves on to the next model; all of them share one budget.
func (s *Service) generate(ctx context.Context, userQuery, contextData string) (string, bool) {
	if s.gemini == nil {
		return "", false
	}

	if s.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.budget)
		defer cancel()
	}

	prompt := buildPrompt(userQuery, contextData)
	for _, model := range s.models {
		if ctx.Err() != nil {
			s.logger.Warn().Err(ctx.Err()).Msg("Generation abandoned, using fallback")
			return "", false
		}
		text, err := s.gemini.GenerateContent(ctx, model, prompt)
		if err != nil {
			s.logger.Warn().Str("model", model).Err(err).Msg("Model generation failed")
			continue
		}
		if text = strings.TrimSpace(text); text == "" {
			s.logger.Warn().Str("model", model).Msg("Model returned empty text")
			continue
		}
		s.logger.Debug().Str("model", model).Int("length", len(text)).Msg("Generated answer")
		return text, true
	}

	s.logger.Warn().Int("candidates", len(s.models)).Msg("No model produced an answer, using fallback")
	return "", false
}

// Ensure Service implements Composer
var _ interfaces.Composer = (*Service)(nil)
