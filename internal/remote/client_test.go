package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"fnotes/internal/note"
)

func testClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, func() string { return token }, zerolog.Nop())
}

func TestListDecodesWireNotes(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notes" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("missing bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"_id":   "abc",
				"title": "Groceries",
				"rows": []map[string]interface{}{
					{"id": "r1", "type": "bullet", "content": "eggs", "order": 0},
				},
				"userId":    "u1",
				"createdAt": "2025-11-14T10:00:00Z",
				"updatedAt": "2025-11-15T09:30:00Z",
			},
		})
	}), "tok123")

	notes, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}

	n := notes[0]
	if n.RemoteID != "abc" || !n.Persisted() {
		t.Fatalf("remote id not adopted: %+v", n)
	}
	if n.ID() != "abc" {
		t.Fatalf("canonical id should be the store id, got %q", n.ID())
	}
	if n.UpdatedAt.IsZero() || n.CreatedAt.IsZero() {
		t.Fatal("timestamps not parsed")
	}
	if len(n.Rows) != 1 || n.Rows[0].Kind != note.KindBullet {
		t.Fatalf("rows not decoded: %+v", n.Rows)
	}
}

func TestUpdateSendsOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	var gotBody map[string]json.RawMessage
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/notes/abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{"_id": "abc", "title": "Renamed"})
	}), "tok")

	title := "Renamed"
	if _, err := c.Update(context.Background(), "abc", UpdatePayload{Title: &title}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if _, ok := gotBody["title"]; !ok {
		t.Fatal("title missing from payload")
	}
	if _, ok := gotBody["rows"]; ok {
		t.Fatal("rows should be omitted when not supplied")
	}
}

func TestStatusCodeTaxonomy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Access token required"}`,
			func(err error) bool { return errors.Is(err, ErrUnauthorized) }},
		{"forbidden", http.StatusForbidden, `{"message":"Invalid token"}`,
			func(err error) bool { return errors.Is(err, ErrUnauthorized) }},
		{"not found", http.StatusNotFound, `{"message":"Note not found"}`,
			func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"server error with message", http.StatusInternalServerError, `{"message":"boom"}`,
			func(err error) bool {
				var apiErr *APIError
				return errors.As(err, &apiErr) && apiErr.Message == "boom"
			}},
		{"server error without message", http.StatusBadGateway, `not json`,
			func(err error) bool {
				var apiErr *APIError
				return errors.As(err, &apiErr) && apiErr.Message == ""
			}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}), "tok")

			_, err := c.List(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tc.check(err) {
				t.Fatalf("wrong error class: %v", err)
			}
		})
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, func() string { return "" }, zerolog.Nop())
	_, err := c.List(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestValidationBeforeNetwork(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made")
	}), "")

	var vErr *ValidationError

	if _, err := c.Create(context.Background(), "", nil); !errors.As(err, &vErr) {
		t.Fatalf("Create without title: got %v", err)
	}
	if _, err := c.Login(context.Background(), "a@b.c", ""); !errors.As(err, &vErr) {
		t.Fatalf("Login without password: got %v", err)
	}
	if _, err := c.Register(context.Background(), "", "a@b.c", "pw"); !errors.As(err, &vErr) {
		t.Fatalf("Register without name: got %v", err)
	}
	if err := c.Delete(context.Background(), ""); !errors.As(err, &vErr) {
		t.Fatalf("Delete without id: got %v", err)
	}
}

func TestLoginReturnsCredentials(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["password"] != "hunter2" {
			t.Errorf("bad login body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok456",
			"user":  map[string]string{"id": "u1", "email": "a@b.c", "name": "Alex"},
		})
	}), "")

	creds, err := c.Login(context.Background(), "a@b.c", "hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if creds.Token != "tok456" || creds.User.Name != "Alex" {
		t.Fatalf("credentials not decoded: %+v", creds)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Health{Status: "OK", Database: "connected"})
	}), "")

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if h.Status != "OK" || h.Database != "connected" {
		t.Fatalf("unexpected health: %+v", h)
	}
}
