package service

import (
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService("test-api-key", "test-secret", time.Hour)
}

func TestIssueToken_EmptyKey(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.IssueToken(model.TokenRequest{}); err != ErrAPIKeyRequired {
		t.Errorf("expected ErrAPIKeyRequired, got %v", err)
	}
}

func TestIssueToken_WrongKey(t *testing.T) {
	svc := newTestAuthService()

	if _, err := svc.IssueToken(model.TokenRequest{APIKey: "wrong"}); err != ErrInvalidAPIKey {
		t.Errorf("expected ErrInvalidAPIKey, got %v", err)
	}
}

func TestIssueToken_ValidKey(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.IssueToken(model.TokenRequest{APIKey: "test-api-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", resp.ExpiresIn)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.ClientID != "api-client" {
		t.Errorf("expected client_id %q, got %q", "api-client", claims.ClientID)
	}
}
