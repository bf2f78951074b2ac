package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"vision-chat/internal/domain"
	"vision-chat/internal/repository"
)

// ChatService encapsula sesiones, mensajes y la consulta de estadisticas.
type ChatService struct {
	sessions repository.SessionRepository
	messages repository.MessageRepository
}

var (
	ErrChatServiceNotConfigured = errors.New("chat service not configured")
	ErrChatInvalidInput         = errors.New("chat invalid input")
)

func NewChatService(sessions repository.SessionRepository, messages repository.MessageRepository) *ChatService {
	return &ChatService{sessions: sessions, messages: messages}
}

// CreateSession registra una sesion nueva. Pares (userID, sessionID)
// duplicados se permiten; no hay upsert.
func (s *ChatService) CreateSession(ctx context.Context, userID, sessionID string) (domain.Session, error) {
	if s == nil || s.sessions == nil {
		return domain.Session{}, ErrChatServiceNotConfigured
	}

	userID = strings.TrimSpace(userID)
	sessionID = strings.TrimSpace(sessionID)
	if userID == "" || sessionID == "" {
		return domain.Session{}, ErrChatInvalidInput
	}

	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *ChatService) ListSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	if s == nil || s.sessions == nil {
		return nil, ErrChatServiceNotConfigured
	}
	return s.sessions.ListByUserID(ctx, strings.TrimSpace(userID))
}

type SaveMessageInput struct {
	SessionID string
	Role      string
	Content   string
	ImageData string
}

// SaveMessage persiste un turno de la conversacion. El payload de imagen
// ausente se normaliza a cadena vacia.
func (s *ChatService) SaveMessage(ctx context.Context, input SaveMessageInput) (domain.Message, error) {
	if s == nil || s.messages == nil {
		return domain.Message{}, ErrChatServiceNotConfigured
	}

	sessionID := strings.TrimSpace(input.SessionID)
	role := strings.TrimSpace(input.Role)
	if sessionID == "" || input.Content == "" {
		return domain.Message{}, ErrChatInvalidInput
	}
	if role != domain.RoleUser && role != domain.RoleAI {
		return domain.Message{}, ErrChatInvalidInput
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   input.Content,
		ImageData: input.ImageData,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return domain.Message{}, err
	}
	return msg, nil
}

// ListMessages devuelve los mensajes de una sesion en orden de insercion.
func (s *ChatService) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	if s == nil || s.messages == nil {
		return nil, ErrChatServiceNotConfigured
	}
	return s.messages.ListBySessionID(ctx, strings.TrimSpace(sessionID))
}

// UserStats junta las sesiones del usuario contra todos los mensajes,
// casando por sessionId del cliente. Lineal sobre la coleccion completa.
func (s *ChatService) UserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	if s == nil || s.sessions == nil || s.messages == nil {
		return domain.UserStats{}, ErrChatServiceNotConfigured
	}

	sessions, err := s.sessions.ListByUserID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return domain.UserStats{}, err
	}
	all, err := s.messages.ListAll(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}

	owned := make(map[string]bool, len(sessions))
	for _, sess := range sessions {
		owned[sess.SessionID] = true
	}

	stats := domain.UserStats{TotalChats: len(sessions)}
	for _, msg := range all {
		if !owned[msg.SessionID] {
			continue
		}
		if msg.Role == domain.RoleUser {
			stats.TotalMessages++
		}
		if msg.ImageData != "" {
			stats.ImagesAnalyzed++
		}
	}
	return stats, nil
}
