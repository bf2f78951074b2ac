package repository

import (
	"context"

	"vision-chat/internal/domain"
	"vision-chat/internal/storage"
)

// MessageRepository define el contrato de persistencia para mensajes.
type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) error
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
}

// FileMessageRepository implementa MessageRepository sobre la coleccion JSON.
// El orden de archivo es el orden de insercion, porque solo hay appends.
type FileMessageRepository struct {
	messages *storage.Collection[domain.Message]
}

func NewFileMessageRepository(messages *storage.Collection[domain.Message]) *FileMessageRepository {
	return &FileMessageRepository{messages: messages}
}

func (r *FileMessageRepository) Create(_ context.Context, message domain.Message) error {
	return r.messages.Append(message)
}

func (r *FileMessageRepository) ListBySessionID(_ context.Context, sessionID string) ([]domain.Message, error) {
	out := []domain.Message{}
	for _, m := range r.messages.ReadAll() {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *FileMessageRepository) ListAll(_ context.Context) ([]domain.Message, error) {
	return r.messages.ReadAll(), nil
}
