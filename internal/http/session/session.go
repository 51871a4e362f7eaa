// Package session issues and verifies the signed login cookie and
// carries the one-shot flash messages shown after a redirect.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie holding the signed session token.
const CookieName = "session"

// ErrNoSession is returned when a request carries no valid session,
// whether the cookie is missing, expired, or fails verification.
var ErrNoSession = errors.New("session: not authenticated")

type userKey struct{}

// Manager signs, verifies and clears session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs a fresh token for username and sets the login cookie.
func (m *Manager) Issue(w http.ResponseWriter, username string) error {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("signing session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear expires the login cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Username returns the logged-in username, or ErrNoSession.
func (m *Manager) Username(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}

	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || claims.Subject == "" {
		return "", ErrNoSession
	}

	return claims.Subject, nil
}

// Authenticated reports whether the request carries a valid session.
func (m *Manager) Authenticated(r *http.Request) bool {
	_, err := m.Username(r)

	return err == nil
}

// RequireUser redirects anonymous requests to the login page and puts
// the username into the request context for the wrapped handler.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := m.Username(r)
		if err != nil {
			m.Flash(w, LevelInfo, "Please login.")
			http.Redirect(w, r, "/login", http.StatusFound)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), username)))
	})
}

// WithUser returns ctx carrying the authenticated username.
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey{}, username)
}

// User returns the username stored by RequireUser, or "" for an
// anonymous request.
func User(ctx context.Context) string {
	username, _ := ctx.Value(userKey{}).(string)

	return username
}
