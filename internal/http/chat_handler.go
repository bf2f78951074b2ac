package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vision-chat/internal/service"
)

// ChatHandler mantiene dependencias para sesiones, mensajes y estadisticas.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService) *ChatHandler {
	return &ChatHandler{logger: logger, chatServ: chatServ}
}

// CreateSession maneja POST /api/chat/session.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId" binding:"required"`
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session data"})
		return
	}

	session, err := h.chatServ.CreateSession(c.Request.Context(), req.UserID, req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrChatInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session data"})
			return
		}
		h.logger.Error("create session failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": session})
}

// ListSessions maneja GET /api/chat/sessions/:userId.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chatServ.ListSessions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.logger.Error("list sessions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sessions": sessions})
}

// CreateMessage maneja POST /api/chat/message.
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Role      string `json:"role" binding:"required"`
		Content   string `json:"content" binding:"required"`
		ImageData string `json:"imageData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message data"})
		return
	}

	msg, err := h.chatServ.SaveMessage(c.Request.Context(), service.SaveMessageInput{
		SessionID: req.SessionID,
		Role:      req.Role,
		Content:   req.Content,
		ImageData: req.ImageData,
	})
	if err != nil {
		if errors.Is(err, service.ErrChatInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message data"})
			return
		}
		h.logger.Error("create message failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// ListMessages maneja GET /api/chat/messages/:sessionId.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatServ.ListMessages(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// UserStats maneja GET /api/user/stats/:userId.
func (h *ChatHandler) UserStats(c *gin.Context) {
	stats, err := h.chatServ.UserStats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.logger.Error("user stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
