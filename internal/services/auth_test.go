package services

import (
	"testing"

	"github.com/btuckerc/jeopardy-sub004/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewAuthService(nil, "test-secret")

	token, err := service.GenerateToken(42, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, role, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
	if role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", role, models.RoleAdmin)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a")
	verifier := NewAuthService(nil, "secret-b")

	token, err := issuer.GenerateToken(7, models.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewAuthService(nil, "test-secret")
	if _, _, err := service.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage input must not validate")
	}
}
