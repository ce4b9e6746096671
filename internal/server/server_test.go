package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"backend-echomate/internal/config"
	"backend-echomate/internal/session"
	"backend-echomate/internal/store"
)

func TestHealthRoute(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := s.App.Test(req)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 status")
	}
}

func TestRoutesRegistered(t *testing.T) {
	s := NewServer(config.Config{ServerPort: ":0"}, nil)

	for _, path := range []string{"/feed", "/posts"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := s.App.Test(req)
		if err != nil {
			t.Fatalf("test request %s: %v", path, err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
	}
}

func TestRestoresSessionOnStartup(t *testing.T) {
	kv := store.NewMemory()
	raw, _ := json.Marshal(session.User{ID: "1", Username: "ann", Email: "ann@example.com"})
	if err := kv.Set(context.Background(), store.UserKey, string(raw)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewServer(config.Config{ServerPort: ":0"}, kv)

	user, ok := s.Sessions.Current()
	if !ok {
		t.Fatalf("expected restored session")
	}
	if user.Username != "ann" {
		t.Fatalf("unexpected restored user: %+v", user)
	}
}
