// Package remote is the gateway to the note store's JSON API. All note
// routes require a bearer credential; login and register mint one.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fnotes/internal/note"
)

const requestTimeout = 10 * time.Second

// TokenSource supplies the current bearer token, empty when logged out.
// Reading at request time keeps the client valid across re-authentication.
type TokenSource func() string

type Client struct {
	base  string
	http  *http.Client
	token TokenSource
	log   zerolog.Logger
}

// NewClient builds a gateway against base (including any path prefix, e.g.
// http://localhost:3001/api).
func NewClient(base string, token TokenSource, log zerolog.Logger) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		http:  &http.Client{Timeout: requestTimeout},
		token: token,
		log:   log,
	}
}

// List returns all notes owned by the current user, newest update first.
func (c *Client) List(ctx context.Context) ([]note.Note, error) {
	var wire []apiNote
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &wire); err != nil {
		return nil, err
	}

	notes := make([]note.Note, 0, len(wire))
	for _, a := range wire {
		notes = append(notes, a.toNote())
	}
	return notes, nil
}

// Create persists a new note and returns it with the store-assigned
// identifier and timestamps.
func (c *Client) Create(ctx context.Context, title string, rows []note.Row) (note.Note, error) {
	if title == "" {
		return note.Note{}, &ValidationError{Field: "title"}
	}
	if rows == nil {
		rows = []note.Row{}
	}

	var wire apiNote
	if err := c.do(ctx, http.MethodPost, "/notes", createPayload{Title: title, Rows: rows}, &wire); err != nil {
		return note.Note{}, err
	}
	return wire.toNote(), nil
}

// Update persists only the supplied fields of the note with the given id.
func (c *Client) Update(ctx context.Context, id string, payload UpdatePayload) (note.Note, error) {
	if id == "" {
		return note.Note{}, &ValidationError{Field: "id"}
	}

	var wire apiNote
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), payload, &wire); err != nil {
		return note.Note{}, err
	}
	return wire.toNote(), nil
}

// Delete removes the note with the given id from the store.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id"}
	}

	var resp deleteResponse
	return c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, &resp)
}

// Login exchanges credentials for a bearer token and user object.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	if email == "" {
		return Credentials{}, &ValidationError{Field: "email"}
	}
	if password == "" {
		return Credentials{}, &ValidationError{Field: "password"}
	}

	body := map[string]string{"email": email, "password": password}
	var resp credentialsResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: resp.Token, User: resp.User}, nil
}

// Register creates an account and returns its first set of credentials.
func (c *Client) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	if name == "" {
		return Credentials{}, &ValidationError{Field: "name"}
	}
	if email == "" {
		return Credentials{}, &ValidationError{Field: "email"}
	}
	if password == "" {
		return Credentials{}, &ValidationError{Field: "password"}
	}

	body := map[string]string{"name": name, "email": email, "password": password}
	var resp credentialsResponse
	if err := c.do(ctx, http.MethodPost, "/register", body, &resp); err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: resp.Token, User: resp.User}, nil
}

// Health probes the store's liveness endpoint. No credential required.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", tok))
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("op", op).Err(err).Msg("request failed")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	// Surface the server-provided message when the body carries one.
	msg := ""
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Error != "" {
				msg = eb.Error
			}
		}
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
