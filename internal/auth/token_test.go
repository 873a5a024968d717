package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue(123)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	userID, err := issuer.UserID(tok)
	if err != nil {
		t.Fatalf("UserID error: %v", err)
	}
	if userID != 123 {
		t.Fatalf("user id mismatch: got %d want 123", userID)
	}
}

func TestUserID_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right-secret"), time.Hour).Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer([]byte("wrong-secret"), time.Hour).UserID(tok); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

// A token is valid strictly before issuance+ttl and rejected at exactly
// issuance+ttl.
func TestUserID_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := time.Hour

	issuer := NewIssuer([]byte("secret"), window)
	issuer.now = func() time.Time { return issuedAt }

	tok, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// One second before the boundary: still valid.
	issuer.now = func() time.Time { return issuedAt.Add(window - time.Second) }
	if _, err := issuer.UserID(tok); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	// At the boundary: expired.
	issuer.now = func() time.Time { return issuedAt.Add(window) }
	if _, err := issuer.UserID(tok); err == nil {
		t.Fatal("expected token to be rejected at expiry instant")
	}

	// After the boundary: expired.
	issuer.now = func() time.Time { return issuedAt.Add(window + time.Second) }
	if _, err := issuer.UserID(tok); err == nil {
		t.Fatal("expected token to be rejected after expiry")
	}
}

func TestUserID_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer([]byte("secret"), time.Hour).UserID("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
