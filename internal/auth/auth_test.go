package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/focusdeck/internal/shared"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42, "desertthunder")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "desertthunder" {
		t.Errorf("Username = %q, want %q", claims.Username, "desertthunder")
	}
}

func TestVerifyRejections(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenIssuer("test-secret", -time.Hour)
		// negative ttl falls back to default, so issue via a tiny positive ttl
		if expired.TTL() != DefaultTokenTTL {
			t.Fatalf("ttl = %v, want default", expired.TTL())
		}

		short := &TokenIssuer{secret: []byte("test-secret"), ttl: -time.Minute}
		token, err := short.Issue(1, "u")
		if err != nil {
			t.Fatalf("Issue() error: %v", err)
		}

		if _, err := issuer.Verify(token); !errors.Is(err, shared.ErrUnauthorized) {
			t.Errorf("Verify() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Hour)
		token, err := other.Issue(1, "u")
		if err != nil {
			t.Fatalf("Issue() error: %v", err)
		}

		if _, err := issuer.Verify(token); !errors.Is(err, shared.ErrUnauthorized) {
			t.Errorf("Verify() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.token"); !errors.Is(err, shared.ErrUnauthorized) {
			t.Errorf("Verify() error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if hash == "hunter22" {
		t.Fatal("hash should not equal the plaintext")
	}

	if err := CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword() error: %v", err)
	}

	if err := CheckPassword(hash, "wrong"); !errors.Is(err, shared.ErrWrongPassword) {
		t.Errorf("CheckPassword() error = %v, want ErrWrongPassword", err)
	}
}
