package storage

import (
	"os"
	"path/filepath"

	"vision-chat/internal/domain"
)

const (
	usersFile    = "users.json"
	sessionsFile = "sessions.json"
	messagesFile = "messages.json"
)

// Store agrupa las tres colecciones persistidas del sistema. Se construye
// una sola vez al arrancar el proceso y se inyecta hacia abajo.
type Store struct {
	Users    *Collection[domain.User]
	Sessions *Collection[domain.Session]
	Messages *Collection[domain.Message]
}

// NewStore crea el directorio de datos si no existe e inicializa los
// archivos ausentes como arrays vacios.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	for _, name := range []string{usersFile, sessionsFile, messagesFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, err
			}
		}
	}
	return &Store{
		Users:    NewCollection[domain.User](filepath.Join(dir, usersFile)),
		Sessions: NewCollection[domain.Session](filepath.Join(dir, sessionsFile)),
		Messages: NewCollection[domain.Message](filepath.Join(dir, messagesFile)),
	}, nil
}
