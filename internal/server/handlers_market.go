package server

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/bobmcallan/finchat/internal/services/market"
	"github.com/bobmcallan/finchat/internal/services/news"
	"github.com/bobmcallan/finchat/internal/services/resolver"
)

// maxNewsCount is the largest page size the headline provider accepts
const maxNewsCount = 100

var (
	pairPattern  = regexp.MustCompile(`^[A-Z]{4,12}$`)
	tokenPattern = regexp.MustCompile(`^[a-z]{2,20}$`)
)

// validatePair normalizes a currency pair path segment such as "usdinr".
// Returns the uppercased pair, or an error message.
func validatePair(raw string) (string, string) {
	pair := strings.ToUpper(strings.TrimSpace(raw))
	if pair == "" {
		return "", "pair is required"
	}
	if !pairPattern.MatchString(pair) {
		return "", "pair must be letters only, e.g. USDINR"
	}
	return pair, ""
}

// handleQuote handles GET /api/quote?q=apple.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		WriteError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	quote, err := s.app.Overview.QuickQuote(r.Context(), q)
	switch {
	case errors.Is(err, resolver.ErrNotFound):
		WriteErrorWithCode(w, http.StatusNotFound, "No symbol found for '"+q+"'", "symbol_not_found")
	case errors.Is(err, market.ErrUnavailable):
		WriteErrorWithCode(w, http.StatusBadGateway, "Quote unavailable", "unavailable")
	case err != nil:
		WriteError(w, http.StatusInternalServerError, "Quote lookup failed")
	default:
		WriteJSON(w, http.StatusOK, quote)
	}
}

// handleForex handles GET /api/forex/{pair}.
func (s *Server) handleForex(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	pair, errMsg := validatePair(PathParam(r, "/api/forex/", ""))
	if errMsg != "" {
		WriteError(w, http.StatusBadRequest, errMsg)
		return
	}

	rate, err := s.app.Market.GetForexRate(r.Context(), pair)
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadGateway, "Rate unavailable for "+pair, "unavailable")
		return
	}
	WriteJSON(w, http.StatusOK, rate)
}

// handleNews handles GET /api/news?category=business&country=us&count=5.
// Provider failures yield an empty list.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	category := strings.ToLower(strings.TrimSpace(q.Get("category")))
	country := strings.ToLower(strings.TrimSpace(q.Get("country")))
	if category != "" && !tokenPattern.MatchString(category) {
		WriteError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if country != "" && !tokenPattern.MatchString(country) {
		WriteError(w, http.StatusBadRequest, "invalid country")
		return
	}

	count := s.app.Config.News.PageCount
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxNewsCount {
			WriteError(w, http.StatusBadRequest, "count must be between 1 and 100")
			return
		}
		count = n
	}
	if category == "" {
		category = s.app.Config.News.Category
	}
	if country == "" {
		country = s.app.Config.News.Country
	}
	if count <= 0 {
		count = news.DefaultCount
	}

	items := s.app.News.GetHeadlines(r.Context(), category, country, count)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"country":  country,
		"articles": items,
	})
}

// handleMarketOverview handles GET /api/market/overview.
func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.Overview.Snapshot(r.Context()))
}

// handleMarketCategories handles GET /api/market/categories.
func (s *Server) handleMarketCategories(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.app.Overview.Categories(r.Context()),
	})
}
