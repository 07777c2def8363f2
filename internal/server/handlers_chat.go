package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/finchat/internal/models"
	"github.com/bobmcallan/finchat/internal/services/chat"
)

type chatMessageRequest struct {
	Message string `json:"message"`
}

type chatHistoryResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []models.ChatTurn `json:"messages"`
}

// handleChatSessionCreate handles POST /api/chat/sessions.
func (s *Server) handleChatSessionCreate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	id := s.app.Chat.NewSession()
	WriteJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

// handleChatMessages handles /api/chat/sessions/{id}/messages.
// POST asks a question, GET returns the transcript, DELETE clears it.
func (s *Server) handleChatMessages(w http.ResponseWriter, r *http.Request, sessionID string) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost, http.MethodDelete) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		turns, err := s.app.Chat.History(sessionID)
		if err != nil {
			writeChatError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, chatHistoryResponse{SessionID: sessionID, Messages: turns})

	case http.MethodDelete:
		if err := s.app.Chat.Reset(sessionID); err != nil {
			writeChatError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	case http.MethodPost:
		var req chatMessageRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		reply, err := s.app.Chat.Ask(r.Context(), sessionID, req.Message)
		if err != nil {
			writeChatError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, reply)
	}
}

func writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		WriteErrorWithCode(w, http.StatusNotFound, err.Error(), "session_not_found")
	case errors.Is(err, chat.ErrEmptyPrompt):
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "empty_message")
	default:
		WriteError(w, http.StatusInternalServerError, "Chat failed")
	}
}
