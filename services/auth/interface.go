package auth

import (
	"context"
	"errors"

	"modernschedule/models"
)

// ErrInvalidCredentials is returned when a login attempt does not match.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Authenticator gates the management screens. Implementations decide what
// a valid credential is; callers only see a session or an error.
type Authenticator interface {
	// Authenticate verifies the credentials and, on success, opens a
	// session and returns its token. A failed attempt leaves no session.
	Authenticate(ctx context.Context, username, password string) (*models.AuthResponse, error)

	// Logout closes the session. Unknown session IDs are not an error.
	Logout(ctx context.Context, sessionID string) error
}
