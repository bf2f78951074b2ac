package repository

import (
	"context"

	"vision-chat/internal/domain"
	"vision-chat/internal/storage"
)

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// FileUserRepository implementa UserRepository sobre la coleccion JSON.
type FileUserRepository struct {
	users *storage.Collection[domain.User]
}

func NewFileUserRepository(users *storage.Collection[domain.User]) *FileUserRepository {
	return &FileUserRepository{users: users}
}

func (r *FileUserRepository) Create(_ context.Context, user domain.User) error {
	return r.users.Append(user)
}

func (r *FileUserRepository) GetByID(_ context.Context, id string) (domain.User, error) {
	for _, u := range r.users.ReadAll() {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (r *FileUserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range r.users.ReadAll() {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}
