package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thanwa-dev/priceboard/internal/models"
	"github.com/thanwa-dev/priceboard/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the only auth failure clients ever see. The two
// wrapped causes below exist for server-side logs; both unwrap to this so
// a failed login never reveals whether the username exists.
var ErrInvalidCredentials = errors.New("invalid username or password")

var (
	ErrUnknownUsername = fmt.Errorf("%w: unknown username", ErrInvalidCredentials)
	ErrBadPassword     = fmt.Errorf("%w: password mismatch", ErrInvalidCredentials)
)

// Authenticate verifies a login attempt against the admins table.
// Non-credential errors (connection, statement) are returned unwrapped.
func Authenticate(ctx context.Context, admins *repo.AdminRepo, username, password string) (*models.Admin, error) {
	admin, err := admins.GetByUsername(ctx, username)
	if err == sql.ErrNoRows {
		return nil, ErrUnknownUsername
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadPassword
	}

	return admin, nil
}

// HashPassword returns a bcrypt hash suitable for the password_hash column.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
