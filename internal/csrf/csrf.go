// Package csrf implements the per-session form token protocol: one token
// minted per session, required on every state-changing submission.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// The three verification failures are logged with distinct detail
// server-side but must be surfaced to the client identically.
var (
	ErrTokenMissingForm    = errors.New("csrf token not present in form submission")
	ErrTokenMissingSession = errors.New("csrf token not present in session")
	ErrTokenMismatch       = errors.New("csrf token mismatch")
)

// NewToken returns a fresh 32-byte token, hex-encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Verify checks a submitted token against the session's token. All three
// conditions must hold: the form supplied a token, the session holds one,
// and the two match byte-for-byte.
func Verify(formToken, sessionToken string) error {
	if formToken == "" {
		return ErrTokenMissingForm
	}
	if sessionToken == "" {
		return ErrTokenMissingSession
	}
	if subtle.ConstantTimeCompare([]byte(formToken), []byte(sessionToken)) != 1 {
		return ErrTokenMismatch
	}
	return nil
}
