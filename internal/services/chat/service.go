// Package chat runs the conversational pipeline: context gathering, answer
// composition and per-session transcripts held in memory.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
	"github.com/bobmcallan/finchat/internal/models"
)

var (
	// ErrSessionNotFound is returned for unknown session IDs
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrEmptyPrompt is returned when the user message is blank
	ErrEmptyPrompt = errors.New("message is empty")
)

// dataKeywords trigger a symbol lookup for quote context
var dataKeywords = []string{"price", "stock", "rate", "forex", "commodity"}

// NewsContext is the headline query attached to every prompt
type NewsContext struct {
	Category string
	Country  string
	Count    int
}

// Service implements ChatService
type Service struct {
	resolver interfaces.SymbolResolver
	market   interfaces.MarketGateway
	news     interfaces.NewsGateway
	composer interfaces.Composer
	logger   *common.Logger
	headline NewsContext
	now      func() time.Time // injectable clock for testing

	mu       sync.Mutex
	sessions map[string][]models.ChatTurn
}

// NewService creates a chat service. resolver, market and news may be nil;
// the corresponding context is then omitted.
func NewService(resolver interfaces.SymbolResolver, market interfaces.MarketGateway, news interfaces.NewsGateway, composer interfaces.Composer, headline NewsContext, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	if headline.Count <= 0 {
		headline.Count = 3
	}
	return &Service{
		resolver: resolver,
		market:   market,
		news:     news,
		composer: composer,
		logger:   logger,
		headline: headline,
		now:      time.Now,
		sessions: make(map[string][]models.ChatTurn),
	}
}

// NewSession starts an empty transcript and returns its ID
func (s *Service) NewSession() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = []models.ChatTurn{}
	s.mu.Unlock()
	return id
}

// History returns a copy of the session transcript in order
func (s *Service) History(sessionID string) ([]models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make([]models.ChatTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// Reset clears the transcript but keeps the session
func (s *Service) Reset(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	s.sessions[sessionID] = []models.ChatTurn{}
	return nil
}

func (s *Service) appendTurn(sessionID string, role models.ChatRole, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.sessions[sessionID] = append(turns, models.ChatTurn{Role: role, Content: content, At: s.now()})
	return nil
}

// Ask records the prompt, gathers market context, composes an answer and
// records it. Data and model failures never surface; only session and input
// errors are returned.
func (s *Service) Ask(ctx context.Context, sessionID, prompt string) (*models.ChatReply, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if err := s.appendTurn(sessionID, models.RoleUser, prompt); err != nil {
		return nil, err
	}

	reply := s.buildContext(ctx, prompt)

	text, source := s.composer.Compose(ctx, prompt, reply.context)
	if err := s.appendTurn(sessionID, models.RoleAssistant, text); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session", sessionID).
		Str("symbol", reply.symbol).
		Int("headlines", len(reply.headlines)).
		Str("source", source).
		Msg("Chat answer composed")

	return &models.ChatReply{
		SessionID: sessionID,
		Content:   text,
		Symbol:    reply.symbol,
		Quote:     reply.quote,
		Headlines: reply.headlines,
		Source:    source,
	}, nil
}

type gathered struct {
	symbol    string
	quote     *models.Quote
	headlines []models.NewsItem
	context   string
}

// buildContext fetches quote and headline context concurrently. The context
// string always lists the quote line before the news line.
func (s *Service) buildContext(ctx context.Context, prompt string) gathered {
	var out gathered
	g, gctx := errgroup.WithContext(ctx)

	if s.resolver != nil && s.market != nil && wantsMarketData(prompt) {
		g.Go(func() error {
			symbol, err := s.resolver.Resolve(gctx, prompt)
			if err != nil {
				s.logger.Debug().Err(err).Msg("No symbol for chat context")
				return nil
			}
			quote, err := s.market.GetQuote(gctx, symbol)
			if err != nil {
				s.logger.Debug().Err(err).Str("symbol", symbol).Msg("No quote for chat context")
				return nil
			}
			out.symbol, out.quote = symbol, quote
			return nil
		})
	}

	if s.news != nil {
		g.Go(func() error {
			out.headlines = s.news.GetHeadlines(gctx, s.headline.Category, s.headline.Country, s.headline.Count)
			return nil
		})
	}

	_ = g.Wait()

	var lines []string
	if out.quote != nil {
		lines = append(lines, QuoteLine(out.symbol, out.quote))
	}
	if line := NewsLine(out.headlines, s.headline.Count); line != "" {
		lines = append(lines, line)
	}
	out.context = strings.Join(lines, "\n")
	return out
}

func wantsMarketData(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, k := range dataKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// QuoteLine renders the quote context line for a resolved symbol
func QuoteLine(symbol string, q *models.Quote) string {
	return "Current data for " + symbol +
		": Price: " + q.Price.StringFixed(2) +
		", Change: " + q.Change.StringFixed(2) +
		" (" + q.ChangePercent + "%)"
}

// NewsLine renders up to limit headline titles, or "" when there are none
func NewsLine(items []models.NewsItem, limit int) string {
	if len(items) == 0 {
		return ""
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return "Recent financial news: " + strings.Join(titles, "; ")
}

// Ensure Service implements ChatService
var _ interfaces.ChatService = (*Service)(nil)
