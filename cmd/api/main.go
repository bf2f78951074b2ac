package main

import (
	"log"
	"net/http"
	"time"

	"vision-chat/internal/ai"
	"vision-chat/internal/config"
	apihttp "vision-chat/internal/http"
	"vision-chat/internal/repository"
	"vision-chat/internal/service"
	"vision-chat/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("storage init", zap.Error(err))
	}

	userRepo := repository.NewFileUserRepository(store.Users)
	sessionRepo := repository.NewFileSessionRepository(store.Sessions)
	messageRepo := repository.NewFileMessageRepository(store.Messages)

	gateway := ai.NewHTTPClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.TextModel, cfg.VisionModel, logger)

	userSvc := service.NewUserService(logger, userRepo)
	chatSvc := service.NewChatService(sessionRepo, messageRepo)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, 24*time.Hour)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userHandler := apihttp.NewUserHandler(logger, userSvc, tokenSvc)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	aiHandler := apihttp.NewAIHandler(logger, gateway)
	router := apihttp.NewRouter(logger, userHandler, chatHandler, aiHandler, cfg.WebDir)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
