// Package session wraps a gorilla cookie store with the small amount of
// state the admin console needs: a logged-in flag, the admin's identity,
// and the CSRF token. All state lives in the signed+encrypted cookie;
// there is no server-side session table.
package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/thanwa-dev/priceboard/internal/csrf"
	"github.com/thanwa-dev/priceboard/internal/models"
)

const sessionName = "priceboard_admin"

const (
	keyLoggedIn  = "loggedin"
	keyAdminID   = "admin_id"
	keyUsername  = "admin_username"
	keyCSRFToken = "csrf_token"
)

type Manager struct {
	store *sessions.CookieStore
}

// NewManager derives separate signing and encryption keys from the secret,
// which is stronger than signing alone and keeps the secret itself out of
// the cookie machinery.
func NewManager(secret string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store}
}

// get never fails hard: an undecodable cookie (rotated secret, tampering)
// yields a fresh empty session, which downstream checks treat as logged out.
func (m *Manager) get(r *http.Request) *sessions.Session {
	s, _ := m.store.Get(r, sessionName)
	return s
}

// Login marks the session authenticated and records the admin's identity.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, admin *models.Admin) error {
	s := m.get(r)
	s.Values[keyLoggedIn] = true
	s.Values[keyAdminID] = admin.ID
	s.Values[keyUsername] = admin.Username
	return s.Save(r, w)
}

func (m *Manager) IsLoggedIn(r *http.Request) bool {
	s := m.get(r)
	v, ok := s.Values[keyLoggedIn].(bool)
	return ok && v
}

func (m *Manager) AdminID(r *http.Request) (int, bool) {
	s := m.get(r)
	id, ok := s.Values[keyAdminID].(int)
	return id, ok
}

func (m *Manager) AdminUsername(r *http.Request) string {
	s := m.get(r)
	name, _ := s.Values[keyUsername].(string)
	return name
}

// Logout destroys the session unconditionally, CSRF token included.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	for k := range s.Values {
		delete(s.Values, k)
	}
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// Reset discards all session state and immediately mints a fresh CSRF
// token, as a manual recovery action for a stuck token. Any token issued
// before the reset stops validating.
func (m *Manager) Reset(w http.ResponseWriter, r *http.Request) (string, error) {
	s := m.get(r)
	for k := range s.Values {
		delete(s.Values, k)
	}

	token, err := csrf.NewToken()
	if err != nil {
		return "", err
	}
	s.Values[keyCSRFToken] = token

	return token, s.Save(r, w)
}

// CSRFToken returns the session's token, or "" when none has been minted.
func (m *Manager) CSRFToken(r *http.Request) string {
	s := m.get(r)
	token, _ := s.Values[keyCSRFToken].(string)
	return token
}

// EnsureCSRFToken returns the existing token or mints and stores one.
// Called by every render that embeds a form.
func (m *Manager) EnsureCSRFToken(w http.ResponseWriter, r *http.Request) (string, error) {
	s := m.get(r)
	if token, ok := s.Values[keyCSRFToken].(string); ok && token != "" {
		return token, nil
	}

	token, err := csrf.NewToken()
	if err != nil {
		return "", err
	}
	s.Values[keyCSRFToken] = token

	return token, s.Save(r, w)
}
