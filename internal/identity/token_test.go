package identity

import (
	"testing"
	"time"
)

// TestVerifyIDTokenRoundTrip проверяет выпуск и проверку токена.
func TestVerifyIDTokenRoundTrip(t *testing.T) {
	verifier := NewVerifier("test-secret", "equilibria-identity", time.Hour)

	token, expiresAt, err := verifier.IssueIDToken("uid-123", "user@example.com", "Test User", "https://example.com/a.png")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}

	claims, err := verifier.VerifyIDToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if claims.Subject != "uid-123" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Name != "Test User" {
		t.Fatalf("unexpected name: %s", claims.Name)
	}
}

// TestVerifyIDTokenWrongSecret проверяет отказ при чужой подписи.
func TestVerifyIDTokenWrongSecret(t *testing.T) {
	issuer := NewVerifier("secret-a", "equilibria-identity", time.Hour)
	verifier := NewVerifier("secret-b", "equilibria-identity", time.Hour)

	token, _, err := issuer.IssueIDToken("uid-123", "user@example.com", "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := verifier.VerifyIDToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

// TestVerifyIDTokenWrongIssuer проверяет отказ при чужом издателе.
func TestVerifyIDTokenWrongIssuer(t *testing.T) {
	issuer := NewVerifier("secret", "other-issuer", time.Hour)
	verifier := NewVerifier("secret", "equilibria-identity", time.Hour)

	token, _, err := issuer.IssueIDToken("uid-123", "user@example.com", "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := verifier.VerifyIDToken(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

// TestVerifyIDTokenExpired проверяет отказ по истечении срока.
func TestVerifyIDTokenExpired(t *testing.T) {
	verifier := NewVerifier("secret", "equilibria-identity", -time.Minute)

	token, _, err := verifier.IssueIDToken("uid-123", "user@example.com", "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := verifier.VerifyIDToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
