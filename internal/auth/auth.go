package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"phoji-example/internal/api"
	"phoji-example/internal/config"
	"phoji-example/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when the API accepts the credentials but issues no token.
var ErrEmptyToken = errors.New("authentication returned an empty token")

// Session is the token issued for one process run. It is passed by value and
// never persisted.
type Session struct {
	Token     string
	ExpiresAt time.Time // zero when the token carries no readable expiry
}

type AuthManager struct {
	config     *config.Config
	httpClient *http.Client
}

func NewAuthManager(cfg *config.Config, httpClient *http.Client) *AuthManager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AuthManager{config: cfg, httpClient: httpClient}
}

// Login exchanges the configured credentials for a session.
func (a *AuthManager) Login(ctx context.Context) (Session, error) {
	client := api.NewClient(a.config.Endpoints.APIURL, "", api.WithHTTPClient(a.httpClient))

	token, err := client.Authenticate(ctx, a.config.Username, a.config.Password)
	if err != nil {
		return Session{}, err
	}
	if token == "" {
		return Session{}, ErrEmptyToken
	}

	session := Session{Token: token}
	if exp, ok := TokenExpiry(token); ok {
		session.ExpiresAt = exp
		logger.Debug("Authenticated as %s, token expires at %s", a.config.Username, exp.Format(time.RFC3339))
	} else {
		logger.Debug("Authenticated as %s", a.config.Username)
	}

	return session, nil
}

// Client returns an API client bound to the session token.
func (a *AuthManager) Client(s Session) *api.Client {
	return api.NewClient(a.config.Endpoints.APIURL, s.Token, api.WithHTTPClient(a.httpClient))
}

// TokenExpiry reads the exp claim of a JWT without verifying it. Opaque
// tokens report false.
func TokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Expired reports whether the session has a known expiry in the past.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
