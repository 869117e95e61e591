// Package session owns the credential lifecycle: login/register against the
// store, the persisted token+user pair, and local expiry checks.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog"

	"fnotes/internal/config"
	"fnotes/internal/remote"
)

type Manager struct {
	cfg    *config.Config
	client *remote.Client
	log    zerolog.Logger
}

func NewManager(cfg *config.Config, client *remote.Client, log zerolog.Logger) *Manager {
	return &Manager{cfg: cfg, client: client, log: log}
}

// Login exchanges credentials for a session and persists token and user
// together.
func (m *Manager) Login(ctx context.Context, email, password string) (config.User, error) {
	creds, err := m.client.Login(ctx, email, password)
	if err != nil {
		return config.User{}, err
	}

	user := config.User(creds.User)
	if err := m.cfg.SetCredentials(creds.Token, user); err != nil {
		return config.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	m.log.Info().Str("email", user.Email).Msg("logged in")
	return user, nil
}

// Register creates an account and stores its first session.
func (m *Manager) Register(ctx context.Context, name, email, password string) (config.User, error) {
	creds, err := m.client.Register(ctx, name, email, password)
	if err != nil {
		return config.User{}, err
	}

	user := config.User(creds.User)
	if err := m.cfg.SetCredentials(creds.Token, user); err != nil {
		return config.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	m.log.Info().Str("email", user.Email).Msg("registered")
	return user, nil
}

// Logout clears the stored token and user together.
func (m *Manager) Logout() error {
	return m.cfg.ClearCredentials()
}

// Token returns the current bearer token, empty when logged out.
func (m *Manager) Token() string {
	return m.cfg.Token
}

// CurrentUser returns the stored account, if any.
func (m *Manager) CurrentUser() (config.User, bool) {
	if m.cfg.User == nil {
		return config.User{}, false
	}
	return *m.cfg.User, true
}

// Check inspects the stored token without a network round trip. A missing
// or expired token reports remote.ErrUnauthorized so callers can route the
// user into re-authentication instead of losing work.
func (m *Manager) Check() error {
	return CheckToken(m.cfg.Token, time.Now())
}

// CheckToken validates presence and expiry of a bearer token. The signature
// is not verified locally; only the server holds the secret.
func CheckToken(token string, now time.Time) error {
	if token == "" {
		return remote.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("%w: malformed token", remote.ErrUnauthorized)
	}

	if !claims.VerifyExpiresAt(now.Unix(), false) {
		return fmt.Errorf("%w: token expired", remote.ErrUnauthorized)
	}
	return nil
}
