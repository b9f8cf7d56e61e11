package service

import (
	"crypto/subtle"
	"errors"

	"github.com/sarigama-github/agama-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService models the single-administrator access gate: one shared
// password exchanged for one shared bearer token. There are no sessions,
// no expiry and no per-user identity. The secrets are injected as immutable
// configuration at construction.
type AuthService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login exchanges the admin password for the admin token. When
// ADMIN_PASSWORD_HASH is configured the password is checked with bcrypt,
// otherwise it is compared verbatim in constant time.
func (s *AuthService) Login(password string) (string, error) {
	if s.cfg.AdminPasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
		return s.cfg.AdminToken, nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}
	return s.cfg.AdminToken, nil
}

// ValidateToken checks a bearer token against the configured admin token.
func (s *AuthService) ValidateToken(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
