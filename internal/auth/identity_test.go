package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ai-universe/assistant-platform/pkg/logger"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func testVerifier(t *testing.T, secret string) *Verifier {
	t.Helper()
	log, err := logger.New("error")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return NewVerifier(secret, log)
}

func TestIdentityVerified(t *testing.T) {
	secret := "test-secret"
	token := signToken(t, secret, jwt.MapClaims{
		"email":   "ali@example.com",
		"name":    "Ali Valiyev",
		"picture": "https://example.com/p.jpg",
		"sub":     "google-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	id, err := testVerifier(t, secret).Identity(token)
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if id.Email != "ali@example.com" || id.Name != "Ali Valiyev" {
		t.Errorf("unexpected identity: %+v", id)
	}
	if id.Subject != "google-123" {
		t.Errorf("Subject = %q, want google-123", id.Subject)
	}
}

func TestIdentityWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"email": "ali@example.com",
		"name":  "Ali Valiyev",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := testVerifier(t, "test-secret").Identity(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestIdentityExpired(t *testing.T) {
	secret := "test-secret"
	token := signToken(t, secret, jwt.MapClaims{
		"email": "ali@example.com",
		"name":  "Ali Valiyev",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := testVerifier(t, secret).Identity(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestIdentityUnverifiedDecode(t *testing.T) {
	// No secret configured: a token signed with any key decodes.
	token := signToken(t, "whatever", jwt.MapClaims{
		"email": "ali@example.com",
		"name":  "Ali Valiyev",
	})

	id, err := testVerifier(t, "").Identity(token)
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if id.Email != "ali@example.com" {
		t.Errorf("Email = %q", id.Email)
	}
}

func TestIdentityMissingClaims(t *testing.T) {
	secret := "test-secret"
	token := signToken(t, secret, jwt.MapClaims{
		"sub": "google-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := testVerifier(t, secret).Identity(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestIdentityGarbage(t *testing.T) {
	if _, err := testVerifier(t, "s").Identity("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
