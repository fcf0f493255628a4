package auth

import (
	"testing"
	"time"
)

const testSecret = "my_test_jwt_secret"

func TestGenerateAndParseJWT(t *testing.T) {
	userId := "6f1c2a9e-0b1d-4e56-9b7a-1df19c2db0aa"
	username := "testuser"
	role := "user"

	tokenString, err := GenerateJWT(testSecret, userId, username, role, TokenValidity)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}
	if tokenString == "" {
		t.Fatalf("empty token string")
	}

	claims, err := ParseJWT(testSecret, tokenString)
	if err != nil {
		t.Fatalf("failed to parse JWT: %v", err)
	}
	if claims.UserID != userId {
		t.Errorf("expected id=%s, got %s", userId, claims.UserID)
	}
	if claims.Username != username {
		t.Errorf("expected username=%s, got %s", username, claims.Username)
	}
	if claims.Role != role {
		t.Errorf("expected role=%s, got %s", role, claims.Role)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("token should not be expired, got expiresAt=%v", claims.ExpiresAt)
	}
}

func TestParseJWT_InvalidToken(t *testing.T) {
	invalidToken := "this.is.not.a.valid.jwt"
	_, err := ParseJWT(testSecret, invalidToken)
	if err == nil {
		t.Errorf("expected error for invalid JWT, got nil")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(testSecret, "some-id", "wrongsecret", "admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}

	_, err = ParseJWT("totally_wrong_secret", tokenString)
	if err == nil {
		t.Errorf("expected error for wrong secret, got nil")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	tokenString, err := GenerateJWT(testSecret, "some-id", "expired", "user", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}

	_, err = ParseJWT(testSecret, tokenString)
	if err == nil {
		t.Errorf("expected error for expired token, got nil")
	}
}
