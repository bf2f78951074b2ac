package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vision-chat/internal/ai"
	"vision-chat/internal/repository"
	"vision-chat/internal/service"
	"vision-chat/internal/storage"
)

type testEnv struct {
	router  *gin.Engine
	gateway *ai.MockGateway
	tokens  *service.TokenService
}

// newTestEnv arma el stack completo sobre un directorio temporal, con el
// gateway de IA mockeado.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("store init: %v", err)
	}

	logger := zap.NewNop()
	userSvc := service.NewUserService(logger, repository.NewFileUserRepository(store.Users))
	chatSvc := service.NewChatService(
		repository.NewFileSessionRepository(store.Sessions),
		repository.NewFileMessageRepository(store.Messages),
	)
	tokenSvc := service.NewTokenService("test-secret", time.Hour)
	gateway := &ai.MockGateway{}

	router := NewRouter(
		logger,
		NewUserHandler(logger, userSvc, tokenSvc),
		NewChatHandler(logger, chatSvc),
		NewAIHandler(logger, gateway),
		"",
	)
	return &testEnv{router: router, gateway: gateway, tokens: tokenSvc}
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func performMultipart(r *gin.Engine, path string, fileField, fileName string, fileBytes []byte, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if fileBytes != nil {
		fw, _ := w.CreateFormFile(fileField, fileName)
		_, _ = fw.Write(fileBytes)
	}
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
