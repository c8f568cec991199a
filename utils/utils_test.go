package utils

import (
	"testing"

	"github.com/kayotadakota/cat-exhibition/config"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password" {
		t.Fatal("password must not be stored in plaintext")
	}

	if !CheckPasswordHash("password", hash) {
		t.Error("correct password must verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := GenerateToken("user-id")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != "user-id" {
		t.Errorf("expected subject %q, got %q", "user-id", userID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.JWTSecret = "test-secret"

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}

	// A token signed with a different secret must not validate
	config.JWTSecret = "other-secret"
	token, err := GenerateToken("user-id")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	config.JWTSecret = "test-secret"
	if _, err := ParseToken(token); err == nil {
		t.Error("expected an error for a token signed with another secret")
	}
}
