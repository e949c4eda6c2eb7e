package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"wellnexAPI/internal/docstore"
	"wellnexAPI/internal/metrics"
	"wellnexAPI/internal/tracing"
	"wellnexAPI/internal/types/chat"
)

var (
	ErrEmptyMessage    = errors.New("message must not be empty")
	ErrEmptySession    = errors.New("a session needs at least one message")
	ErrInvalidMessage  = errors.New("message sender must be user or bot")
	ErrChatUnavailable = errors.New("chat service unavailable")
)

type Asker interface {
	Ask(ctx context.Context, message string) (string, error)
}

type ChatService struct {
	asker Asker
	store docstore.ChatSessions
	now   func() time.Time
	newID func() string
}

func NewChatService(asker Asker, store docstore.ChatSessions) *ChatService {
	return &ChatService{
		asker: asker,
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Ask returns the backend's reply. On failure the reply is the fallback
// text together with ErrChatUnavailable.
func (s *ChatService) Ask(ctx context.Context, message string) (string, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chatService.Ask")
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	reply, err := s.asker.Ask(ctx, message)
	if err != nil {
		log.Warnf("chat: ask failed: %s", err)
		tracing.Fail(span, err)
		return chat.FallbackReply, fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}
	return reply, nil
}

func (s *ChatService) SaveSession(ctx context.Context, userID string, req chat.SaveSessionRequest) (*chat.Session, error) {
	if len(req.Messages) == 0 {
		return nil, ErrEmptySession
	}
	for _, msg := range req.Messages {
		if msg.Sender != chat.SenderUser && msg.Sender != chat.SenderBot {
			return nil, ErrInvalidMessage
		}
	}

	saved, err := s.store.CreateChatSession(ctx, chat.Session{
		SessionID: s.newID(),
		UserID:    userID,
		Messages:  req.Messages,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues("chat_sessions").Inc()
		return nil, fmt.Errorf("save chat session: %w", err)
	}
	return &saved, nil
}

// ListSessions returns the user's sessions, newest first.
func (s *ChatService) ListSessions(ctx context.Context, userID string) ([]chat.Session, error) {
	sessions, err := s.store.ListChatSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list chat sessions: %w", err)
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	if sessions == nil {
		sessions = []chat.Session{}
	}
	return sessions, nil
}
