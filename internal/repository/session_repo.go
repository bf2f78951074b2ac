package repository

import (
	"context"

	"vision-chat/internal/domain"
	"vision-chat/internal/storage"
)

// SessionRepository define el contrato de persistencia para sesiones de chat.
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Session, error)
}

// FileSessionRepository implementa SessionRepository sobre la coleccion JSON.
type FileSessionRepository struct {
	sessions *storage.Collection[domain.Session]
}

func NewFileSessionRepository(sessions *storage.Collection[domain.Session]) *FileSessionRepository {
	return &FileSessionRepository{sessions: sessions}
}

func (r *FileSessionRepository) Create(_ context.Context, session domain.Session) error {
	return r.sessions.Append(session)
}

func (r *FileSessionRepository) ListByUserID(_ context.Context, userID string) ([]domain.Session, error) {
	out := []domain.Session{}
	for _, s := range r.sessions.ReadAll() {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
