package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	tok, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user ID mismatch: got %d want 42", claims.UserID)
	}
}

func TestIssue_ExpirySetToTTL(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", 24*time.Hour)
	before := time.Now()

	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := before.Add(24 * time.Hour)
	got := claims.ExpiresAt.Time
	if diff := got.Sub(want); diff < 0 || diff > 5*time.Second {
		t.Fatalf("expiry not 24h from issuance: got %v, want within 5s after %v", got, want)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret", -1*time.Second)

	tok, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer("right-secret", time.Hour).Issue(2)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer("wrong-secret", time.Hour).Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer("k", time.Hour).Parse("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
