package server

import (
	"net/http"
	"strings"

	"github.com/bobmcallan/finchat/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Chat
	mux.HandleFunc("/api/chat/sessions/", s.routeChatSessions)
	mux.HandleFunc("/api/chat/sessions", s.handleChatSessionCreate)

	// Market data
	mux.HandleFunc("/api/quote", s.handleQuote)
	mux.HandleFunc("/api/forex/", s.handleForex)
	mux.HandleFunc("/api/news", s.handleNews)
	mux.HandleFunc("/api/market/overview", s.handleMarketOverview)
	mux.HandleFunc("/api/market/categories", s.handleMarketCategories)

	// Ledger
	mux.HandleFunc("/api/transactions/summary", s.handleTransactionSummary)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
}

// routeChatSessions dispatches /api/chat/sessions/{id}/* to the appropriate handler.
func (s *Server) routeChatSessions(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/chat/sessions/")
	if path == "" {
		s.handleChatSessionCreate(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 2 && parts[1] == "messages" && parts[0] != "" {
		s.handleChatMessages(w, r, parts[0])
		return
	}

	WriteError(w, http.StatusNotFound, "Not found")
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
