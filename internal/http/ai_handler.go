package http

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vision-chat/internal/ai"
)

// AIHandler mantiene dependencias para los endpoints del gateway de IA.
type AIHandler struct {
	logger  *zap.Logger
	gateway ai.Gateway
}

// NewAIHandler crea una instancia de AIHandler con dependencias necesarias.
func NewAIHandler(logger *zap.Logger, gateway ai.Gateway) *AIHandler {
	return &AIHandler{logger: logger, gateway: gateway}
}

// GenerateText maneja POST /api/ai/text.
func (h *AIHandler) GenerateText(c *gin.Context) {
	var req struct {
		Prompt            string `json:"prompt"`
		SystemInstruction string `json:"systemInstruction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	response, err := h.gateway.GenerateText(c.Request.Context(), req.Prompt, req.SystemInstruction)
	if err != nil {
		h.logger.Error("text generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate text"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

// AnalyzeImage maneja POST /api/ai/image (multipart, campos image y prompt).
// El limite de 10 MiB se aplica antes de leer el archivo o llamar al proveedor.
func (h *AIHandler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}
	if file.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error("open upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxImageBytes))
	if err != nil {
		h.logger.Error("read upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	imageData := base64.StdEncoding.EncodeToString(raw)
	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	response, err := h.gateway.AnalyzeImage(c.Request.Context(), imageData, mimeType, c.PostForm("prompt"))
	if err != nil {
		h.logger.Error("image analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "response": response, "imageData": imageData})
}

// Headline maneja GET /api/ai/headline. El gateway absorbe casi todos los
// fallos con su lista fija, asi que el 500 es raro en la practica.
func (h *AIHandler) Headline(c *gin.Context) {
	headline, err := h.gateway.GenerateHeadline(c.Request.Context())
	if err != nil {
		h.logger.Error("headline generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate headline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "headline": headline})
}
