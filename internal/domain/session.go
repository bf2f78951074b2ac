package domain

import "time"

// Session es un hilo de conversacion iniciado por el cliente.
// SessionID lo genera el cliente y no es necesariamente unico entre usuarios.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}
