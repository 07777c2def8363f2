package server

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/finchat/internal/storage/ledger"
)

type transactionRequest struct {
	Category string           `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     string           `json:"date,omitempty"`
}

// handleTransactions handles GET and POST /api/transactions.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	ctx := r.Context()

	if r.Method == http.MethodGet {
		txs, err := s.app.Ledger.GetAllTransactions(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Ledger read failed")
			WriteError(w, http.StatusInternalServerError, "Ledger unavailable")
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"transactions": txs})
		return
	}

	var req transactionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Amount == nil {
		WriteError(w, http.StatusBadRequest, "amount is required")
		return
	}

	if err := s.app.Ledger.AddTransaction(ctx, req.Category, *req.Amount, req.Date); err != nil {
		if errors.Is(err, ledger.ErrInvalid) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error().Err(err).Msg("Ledger write failed")
		WriteError(w, http.StatusInternalServerError, "Ledger unavailable")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

// handleTransactionSummary handles GET /api/transactions/summary.
func (s *Server) handleTransactionSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	summary, err := s.app.Ledger.Summary(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Ledger summary failed")
		WriteError(w, http.StatusInternalServerError, "Ledger unavailable")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
