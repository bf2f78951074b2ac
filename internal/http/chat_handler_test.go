package http

import (
	"net/http"
	"testing"
)

func TestCreateSession_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := performRequest(env.router, http.MethodPost, "/api/chat/session", map[string]string{
		"userId": "u1", "sessionId": "1700000000000",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	session, ok := body["session"].(map[string]any)
	if !ok || session["sessionId"] != "1700000000000" {
		t.Fatalf("unexpected session payload: %v", body)
	}
}

func TestCreateSession_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := performRequest(env.router, http.MethodPost, "/api/chat/session", map[string]string{
		"userId": "u1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestListSessions_FiltersByUser(t *testing.T) {
	env := newTestEnv(t)

	for _, pair := range [][2]string{{"u1", "s1"}, {"u2", "s2"}, {"u1", "s3"}} {
		performRequest(env.router, http.MethodPost, "/api/chat/session", map[string]string{
			"userId": pair[0], "sessionId": pair[1],
		})
	}

	rec := performRequest(env.router, http.MethodGet, "/api/chat/sessions/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	sessions, ok := body["sessions"].([]any)
	if !ok || len(sessions) != 2 {
		t.Fatalf("expected 2 sessions for u1, got %v", body)
	}
}

func TestMessages_RoundTripInOrder(t *testing.T) {
	env := newTestEnv(t)

	turns := []map[string]string{
		{"sessionId": "s1", "role": "user", "content": "hola"},
		{"sessionId": "s1", "role": "ai", "content": "hello"},
		{"sessionId": "s1", "role": "user", "content": "sigo"},
		{"sessionId": "s1", "role": "ai", "content": "still here"},
	}
	for _, turn := range turns {
		rec := performRequest(env.router, http.MethodPost, "/api/chat/message", turn)
		if rec.Code != http.StatusOK {
			t.Fatalf("save %q: expected status 200, got %d", turn["content"], rec.Code)
		}
	}

	rec := performRequest(env.router, http.MethodGet, "/api/chat/messages/s1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	messages, ok := body["messages"].([]any)
	if !ok || len(messages) != len(turns) {
		t.Fatalf("expected %d messages, got %v", len(turns), body)
	}
	for i, turn := range turns {
		msg := messages[i].(map[string]any)
		if msg["content"] != turn["content"] || msg["role"] != turn["role"] {
			t.Fatalf("position %d: expected %v, got %v", i, turn, msg)
		}
	}
}

func TestCreateMessage_InvalidRole(t *testing.T) {
	env := newTestEnv(t)

	rec := performRequest(env.router, http.MethodPost, "/api/chat/message", map[string]string{
		"sessionId": "s1", "role": "system", "content": "hola",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestUserStats_EmptyThenPopulated(t *testing.T) {
	env := newTestEnv(t)

	rec := performRequest(env.router, http.MethodGet, "/api/user/stats/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	stats := decodeBody(t, rec)["stats"].(map[string]any)
	if stats["totalChats"] != float64(0) || stats["totalMessages"] != float64(0) || stats["imagesAnalyzed"] != float64(0) {
		t.Fatalf("expected zero stats, got %v", stats)
	}

	performRequest(env.router, http.MethodPost, "/api/chat/session", map[string]string{
		"userId": "u1", "sessionId": "s1",
	})
	for _, turn := range []map[string]string{
		{"sessionId": "s1", "role": "user", "content": "hola"},
		{"sessionId": "s1", "role": "user", "content": "mira", "imageData": "aW1n"},
		{"sessionId": "s1", "role": "ai", "content": "veo una imagen"},
	} {
		performRequest(env.router, http.MethodPost, "/api/chat/message", turn)
	}

	rec = performRequest(env.router, http.MethodGet, "/api/user/stats/u1", nil)
	stats = decodeBody(t, rec)["stats"].(map[string]any)
	if stats["totalChats"] != float64(1) || stats["totalMessages"] != float64(2) || stats["imagesAnalyzed"] != float64(1) {
		t.Fatalf("expected {1,2,1}, got %v", stats)
	}
}
