package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)

	tok, exp, err := svc.GenerateToken("admin-1", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected expiry in the future")
	}

	c, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Subject != "admin-1" || c.Role != "admin" {
		t.Fatalf("unexpected claims %+v", c)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, _, err := svc.GenerateToken("admin-1", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, _, err := NewHMACService("one", time.Hour).GenerateToken("admin-1", "admin")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := NewHMACService("two", time.Hour).ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	if _, err := NewHMACService("secret", time.Hour).ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RefusesToSignWithoutSecret(t *testing.T) {
	if _, _, err := NewHMACService("", time.Hour).GenerateToken("admin-1", "admin"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
