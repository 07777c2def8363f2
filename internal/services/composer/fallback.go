package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobmcallan/finchat/internal/models"
)

// bucket is one keyword category of the fallback classifier
type bucket struct {
	name     string
	keywords []string
	template string
}

var priceKeywords = []string{"price", "stock", "share"}

// buckets are checked in order after the price bucket
var buckets = []bucket{
	{name: "market", keywords: []string{"market", "global", "overview", "trend"}, template: marketTemplate},
	{name: "forex", keywords: []string{"forex", "currency", "exchange", "usd", "eur", "inr"}, template: forexTemplate},
	{name: "commodity", keywords: []string{"gold", "oil", "commodity", "silver", "crude"}, template: commodityTemplate},
	{name: "investment", keywords: []string{"invest", "portfolio", "strategy", "advice"}, template: investmentTemplate},
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Fallback returns the template answer for userQuery. The price bucket looks up
// a live quote; when that lookup fails, classification continues with the
// remaining buckets and ends at the help template, so output is never empty.
func (s *Service) Fallback(ctx context.Context, userQuery, contextData string) string {
	query := strings.ToLower(userQuery)

	if containsAny(query, priceKeywords) {
		if quote := s.lookupQuote(ctx, userQuery); quote != nil {
			return renderPrice(quote, contextData)
		}
	}

	for _, b := range buckets {
		if containsAny(query, b.keywords) {
			return b.template
		}
	}
	return helpTemplate
}

func (s *Service) lookupQuote(ctx context.Context, userQuery string) *models.Quote {
	if s.resolver == nil || s.market == nil {
		return nil
	}

	symbol, err := s.resolver.Resolve(ctx, userQuery)
	if err != nil {
		s.logger.Debug().Err(err).Str("query", userQuery).Msg("Price fallback: no symbol")
		return nil
	}

	quote, err := s.market.GetQuote(ctx, symbol)
	if err != nil {
		s.logger.Debug().Err(err).Str("symbol", symbol).Msg("Price fallback: no quote")
		return nil
	}
	return quote
}

// FormatChange renders a signed two-decimal change such as "+2.50"
func FormatChange(q *models.Quote) string {
	s := q.Change.StringFixed(2)
	if q.IsGain() && !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return s
}

func renderPrice(q *models.Quote, contextData string) string {
	indicator, direction := "📈", "gaining"
	if !q.IsGain() {
		indicator, direction = "📉", "declining"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s **%s Current Price**: $%s\n", indicator, q.Symbol, q.Price.StringFixed(2))
	fmt.Fprintf(&sb, "**Change**: %s (%s%%)\n", FormatChange(q), q.ChangePercent)
	fmt.Fprintf(&sb, "**Volume**: %s\n", q.Volume)
	fmt.Fprintf(&sb, "**Last Updated**: %s\n", q.ObservedAt.Format("2006-01-02 15:04:05"))
	if contextData = strings.TrimSpace(contextData); contextData != "" {
		sb.WriteString("\n")
		sb.WriteString(contextData)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\n💡 **Quick Analysis**: The stock is currently %s.\n", direction)
	sb.WriteString("Consider checking recent news and market trends before making investment decisions.")
	return sb.String()
}
