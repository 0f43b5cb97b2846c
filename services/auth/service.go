package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"modernschedule/models"
	"modernschedule/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// StaticAuthenticator checks logins against a single configured credential
// pair. It is a stand-in for a real user store: the password is bcrypt
// hashed at construction so the plaintext never lives past startup.
type StaticAuthenticator struct {
	Username     string
	PasswordHash []byte
	Sessions     *redis.Client
	SessionTTL   time.Duration
}

// NewStaticAuthenticator hashes the configured password and wires the
// session store.
func NewStaticAuthenticator(username, password string, sessions *redis.Client, ttl time.Duration) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash configured password: %w", err)
	}
	return &StaticAuthenticator{
		Username:     username,
		PasswordHash: hash,
		Sessions:     sessions,
		SessionTTL:   ttl,
	}, nil
}

func (a *StaticAuthenticator) Authenticate(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, err := utils.GenerateToken(sessionID, username, a.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to issue token: %w", err)
	}

	session := utils.AuthSession{
		SessionID: sessionID,
		Username:  username,
		CreatedAt: time.Now(),
		Token:     token,
	}
	if err := utils.SaveAuthSession(a.Sessions, sessionID, session, a.SessionTTL); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		SessionID: sessionID,
		Token:     token,
		Username:  username,
	}, nil
}

func (a *StaticAuthenticator) Logout(ctx context.Context, sessionID string) error {
	return utils.DeleteAuthSession(a.Sessions, sessionID)
}
