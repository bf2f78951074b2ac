package domain

import "time"

const (
	RoleUser = "user"
	RoleAI   = "ai"
)

type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ImageData string    `json:"imageData,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
