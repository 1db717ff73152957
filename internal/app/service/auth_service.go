package service

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/config"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"github.com/seyirtepe/seyirtepe-backend/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenResult is the successful login payload.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

type AuthService interface {
	Login(email, password string) (*TokenResult, error)
}

type authService struct {
	admin        config.AdminConfig
	jwtSecret    string
	accessExpiry time.Duration
}

func NewAuthService(admin config.AdminConfig, jwtSecret string, accessExpiry time.Duration) AuthService {
	return &authService{
		admin:        admin,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// Login checks the submitted credentials against the configured
// administrator account. Email comparison is case-insensitive. When a
// bcrypt hash is configured it takes precedence over the plaintext
// password.
func (s *authService) Login(email, password string) (*TokenResult, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	submitted := strings.ToLower(strings.TrimSpace(email))
	expected := strings.ToLower(strings.TrimSpace(s.admin.Email))

	if expected == "" || submitted != expected {
		logger.Warn("Login failed: unknown email", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	if !s.verifyPassword(password) {
		logger.Warn("Login failed: wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(util.AdminSubject, s.jwtSecret, s.accessExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	logger.Info("Login successful", map[string]interface{}{
		"email": email,
	})

	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.accessExpiry.Seconds()),
	}, nil
}

func (s *authService) verifyPassword(password string) bool {
	if s.admin.PasswordHash != "" {
		return util.VerifyPassword(s.admin.PasswordHash, password)
	}
	if s.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.admin.Password), []byte(password)) == 1
}
