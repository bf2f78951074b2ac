package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vision-chat/internal/service"
)

// UserHandler mantiene dependencias para registro y login.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
	tokens   *service.TokenService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService, tokens *service.TokenService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		userServ: userServ,
		tokens:   tokens,
	}
}

// Register maneja POST /api/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	user, err := h.userServ.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		case errors.Is(err, service.ErrInvalidUserInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		default:
			h.logger.Error("register failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

// Login maneja POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := h.userServ.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public(), "token": token})
}
