//go:build !integration

package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateJWT("42", "customer")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}
	if claims.UserID != "42" || claims.Role != "customer" {
		t.Errorf("claims = %+v, want user 42 role customer", claims)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("GetExpirationTime() = %v, %v", exp, err)
	}
	if exp.Time.Before(time.Now()) {
		t.Errorf("token already expired at %v", exp.Time)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	InitJWT("secret-a", time.Hour)
	token, err := GenerateJWT("1", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	InitJWT("secret-b", time.Hour)
	if _, err := ParseJWT(token); err == nil {
		t.Error("ParseJWT() with rotated secret succeeded, want error")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("1234")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword("1234", string(hash)) {
		t.Error("CheckPassword() = false for matching pin")
	}
	if CheckPassword("4321", string(hash)) {
		t.Error("CheckPassword() = true for wrong pin")
	}
}
