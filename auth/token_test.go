package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := IssueToken(42, secret)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	userID, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID = %d, want 42", userID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(42, []byte("right-secret"))
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := ParseToken(tok, []byte("wrong-secret")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseTokenMalformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", []byte("k")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
	if _, err := ParseToken("", []byte("k")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestParseTokenTampered(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	tok, err := IssueToken(7, secret)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	if _, err := ParseToken(tampered, secret); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

// Tokens intentionally carry no exp claim; they only die with the secret.
func TestIssueTokenNoExpiry(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(42, []byte("super-secret"))
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		t.Fatalf("ParseUnverified error: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatal("token carries an exp claim, expected none")
	}
}
