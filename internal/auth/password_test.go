package auth

import (
	"errors"
	"testing"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "correct horse battery") {
		t.Error("CheckPassword() rejected the right password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("ValidatePassword(short) = %v, want ErrWeakPassword", err)
	}
	if err := ValidatePassword("long enough password"); err != nil {
		t.Errorf("ValidatePassword() unexpected error: %v", err)
	}
}
