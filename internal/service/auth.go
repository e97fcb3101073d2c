package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrAPIKeyRequired = errors.New("api_key is required")
	ErrInvalidAPIKey  = errors.New("invalid api key")
)

// AuthService exchanges the configured API key for short-lived access tokens.
type AuthService struct {
	apiKey    string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(apiKey, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		apiKey:    apiKey,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// IssueToken validates the presented API key and returns a signed JWT.
// The key comparison is constant-time.
func (s *AuthService) IssueToken(req model.TokenRequest) (model.TokenResponse, error) {
	if req.APIKey == "" {
		return model.TokenResponse{}, ErrAPIKeyRequired
	}

	if subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(s.apiKey)) != 1 {
		return model.TokenResponse{}, ErrInvalidAPIKey
	}

	token, err := crypto.GenerateToken("api-client", s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
	}, nil
}
