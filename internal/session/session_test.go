package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog"

	"fnotes/internal/config"
	"fnotes/internal/remote"
)

func testManager(t *testing.T, handler http.Handler) (*Manager, *config.Config) {
	t.Helper()

	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL, func() string { return cfg.Token }, zerolog.Nop())
	return NewManager(cfg, client, zerolog.Nop()), cfg
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"exp":    exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLoginPersistsTokenAndUserTogether(t *testing.T) {
	t.Parallel()

	m, cfg := testManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok123",
			"user":  map[string]string{"id": "u1", "email": "a@b.c", "name": "Alex"},
		})
	}))

	user, err := m.Login(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Name != "Alex" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if cfg.Token != "tok123" || cfg.User == nil {
		t.Fatal("session not persisted")
	}
	if m.Token() != "tok123" {
		t.Fatal("Token() should reflect the stored session")
	}
}

func TestLoginFailureDoesNotStoreSession(t *testing.T) {
	t.Parallel()

	m, cfg := testManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))

	_, err := m.Login(context.Background(), "a@b.c", "wrong")
	var apiErr *remote.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Invalid credentials" {
		t.Fatalf("expected server message, got %v", err)
	}
	if cfg.Token != "" || cfg.User != nil {
		t.Fatal("failed login must not persist credentials")
	}
}

func TestLogoutClearsBothValues(t *testing.T) {
	t.Parallel()

	m, cfg := testManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok123",
			"user":  map[string]string{"id": "u1", "email": "a@b.c", "name": "Alex"},
		})
	}))

	if _, err := m.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if cfg.Token != "" || cfg.User != nil {
		t.Fatal("logout must clear token and user together")
	}
	if _, ok := m.CurrentUser(); ok {
		t.Fatal("CurrentUser should report logged out")
	}
}

func TestCheckToken(t *testing.T) {
	t.Parallel()

	now := time.Now()

	if err := CheckToken("", now); !errors.Is(err, remote.ErrUnauthorized) {
		t.Fatalf("empty token: got %v", err)
	}
	if err := CheckToken("garbage", now); !errors.Is(err, remote.ErrUnauthorized) {
		t.Fatalf("malformed token: got %v", err)
	}
	if err := CheckToken(signedToken(t, now.Add(-time.Hour)), now); !errors.Is(err, remote.ErrUnauthorized) {
		t.Fatalf("expired token: got %v", err)
	}
	if err := CheckToken(signedToken(t, now.Add(time.Hour)), now); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
}
