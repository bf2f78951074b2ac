package http

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImageBytes limita el upload de imagenes a 10 MiB. Uploads mas grandes
// se rechazan antes de tocar storage o el proveedor.
const maxImageBytes = 10 << 20

// NewRouter configura el router de Gin con middlewares, rutas de la API y
// las paginas estaticas del cliente.
func NewRouter(
	logger *zap.Logger,
	userH *UserHandler,
	chatH *ChatHandler,
	aiH *AIHandler,
	webDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.MaxMultipartMemory = maxImageBytes

	api := r.Group("/api")
	api.POST("/register", userH.Register)
	api.POST("/login", userH.Login)

	api.POST("/chat/session", chatH.CreateSession)
	api.GET("/chat/sessions/:userId", chatH.ListSessions)
	api.POST("/chat/message", chatH.CreateMessage)
	api.GET("/chat/messages/:sessionId", chatH.ListMessages)
	api.GET("/user/stats/:userId", chatH.UserStats)

	api.POST("/ai/text", aiH.GenerateText)
	api.POST("/ai/image", aiH.AnalyzeImage)
	api.GET("/ai/headline", aiH.Headline)

	if webDir != "" {
		registerWebRoutes(r, webDir)
	}

	return r
}

// registerWebRoutes sirve las paginas del cliente.
func registerWebRoutes(r *gin.Engine, webDir string) {
	r.Static("/static", filepath.Join(webDir, "static"))
	for _, page := range []string{"login", "register", "dashboard", "chat"} {
		r.GET("/"+page, func(c *gin.Context) {
			c.File(filepath.Join(webDir, page+".html"))
		})
	}
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(webDir, "index.html"))
	})
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
