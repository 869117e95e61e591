package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fnotes/internal/config"
	"fnotes/internal/remote"
	"fnotes/internal/state"
	"fnotes/internal/store"
)

func testState(t *testing.T) *state.State {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/notes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"_id": "n1", "title": "Groceries", "rows": []interface{}{}, "updatedAt": "2025-11-20T12:00:00Z"},
			{"_id": "n2", "title": "Ideas", "rows": []interface{}{}, "updatedAt": "2025-11-19T12:00:00Z"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL, func() string { return "tok" }, zerolog.Nop())
	notes := store.NewNotes(client, zerolog.Nop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := notes.Fetch(ctx); err != nil {
		t.Fatalf("failed to fetch notes: %v", err)
	}

	return &state.State{Store: notes, Config: &config.Config{}, Log: zerolog.Nop()}
}

func TestResolveNoteByID(t *testing.T) {
	t.Parallel()

	s := testState(t)
	n, err := ResolveNote(s, "n2", "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if n.Title != "Ideas" {
		t.Fatalf("expected Ideas, got %q", n.Title)
	}
}

func TestResolveNoteByTitleCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := testState(t)
	n, err := ResolveNote(s, "groceries", "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if n.ID() != "n1" {
		t.Fatalf("expected n1, got %q", n.ID())
	}
}

func TestResolveNoteUnknownArgument(t *testing.T) {
	t.Parallel()

	s := testState(t)
	if _, err := ResolveNote(s, "missing", ""); err == nil {
		t.Fatal("expected error for unknown note")
	}
}

func TestEnsureSessionRequiresLogin(t *testing.T) {
	t.Parallel()

	s := testState(t)
	if err := EnsureSession(s); err == nil {
		t.Fatal("expected error without stored credentials")
	}
}
