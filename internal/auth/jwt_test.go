package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret-key-for-signing", time.Hour)

	signed, err := tokens.Generate("user-123", "an@example.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	claims, err := tokens.Validate(signed)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("Subject = %q, want user-123", claims.Subject)
	}
	if claims.Email != "an@example.com" {
		t.Errorf("Email = %q, want an@example.com", claims.Email)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-one-for-signing-here", time.Hour)
	verifier := NewTokenManager("secret-two-for-checking-it", time.Hour)

	signed, err := signer.Generate("user-123", "an@example.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := verifier.Validate(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret-key-for-signing", -time.Minute)

	signed, err := tokens.Generate("user-123", "an@example.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := tokens.Validate(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret-key-for-signing", time.Hour)

	if _, err := tokens.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}
