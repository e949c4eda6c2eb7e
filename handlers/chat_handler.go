package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/types/chat"
	"wellnexAPI/services"
)

type ChatHandler struct {
	chatService ChatService
}

func NewChatHandler(chatService ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req chat.AskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reply, err := h.chatService.Ask(ctx, req.Message)
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, chat.AskResponse{Reply: reply})
	case errors.Is(err, services.ErrEmptyMessage):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrChatUnavailable):
		respondWithJSON(w, http.StatusBadGateway, map[string]string{
			"reply": chat.FallbackReply,
			"error": "Chat service unavailable",
		})
	default:
		log.Errorf("chat ask: %s", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *ChatHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req chat.SaveSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	session, err := h.chatService.SaveSession(ctx, userID, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptySession) || errors.Is(err, services.ErrInvalidMessage) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("save chat session of %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	respondWithJSON(w, http.StatusCreated, session)
}

func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sessions, err := h.chatService.ListSessions(ctx, userID)
	if err != nil {
		log.Errorf("list chat sessions of %s: %s", userID, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to load sessions")
		return
	}

	respondWithJSON(w, http.StatusOK, sessions)
}
