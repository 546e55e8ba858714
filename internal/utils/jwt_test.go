package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateJWT(42, "ops@example.com", "superadmin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "ops@example.com" {
		t.Errorf("Email = %q, want ops@example.com", claims.Email)
	}
	if claims.Role != "superadmin" {
		t.Errorf("Role = %q, want superadmin", claims.Role)
	}
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateJWT(1, "ops@example.com", "operator")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	parts[2] = "tampered" + parts[2]

	if _, err := ValidateJWT(strings.Join(parts, ".")); err == nil {
		t.Error("ValidateJWT accepted a tampered signature")
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one", time.Hour)
	token, err := GenerateJWT(1, "ops@example.com", "operator")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	InitJWT("secret-two", time.Hour)
	if _, err := ValidateJWT(token); err == nil {
		t.Error("ValidateJWT accepted a token signed with a different secret")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	InitJWT("test-secret", time.Nanosecond)

	token, err := GenerateJWT(1, "ops@example.com", "operator")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, err = ValidateJWT(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("ValidateJWT error = %v, want %v", err, jwt.ErrTokenExpired)
	}
}
