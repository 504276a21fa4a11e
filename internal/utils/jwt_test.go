package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("hong@example.com")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.Email != "hong@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Errorf("expected error for malformed token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	token, err := GenerateToken("a@b.c")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	SetJWTSecret("secret-b")
	defer SetJWTSecret("secret-a")

	if _, err := ParseToken(token); err == nil {
		t.Errorf("expected error for token signed with another secret")
	}
}
