package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"autoservice/internal/domain/entities"
)

func TestTokenIssuer_IssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("w1", entities.RoleWorker)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	id, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id.UserID != "w1" || id.Role != entities.RoleWorker || id.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestTokenIssuer_Parse(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewTokenIssuer("other", time.Hour).Issue("w1", entities.RoleAdmin)
		if _, err := issuer.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenIssuer("secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _ := old.Issue("w1", entities.RoleWorker)
		if _, err := issuer.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown role grants nothing", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: "superuser",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		id, err := issuer.Parse(token)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id.Role != entities.RoleNone {
			t.Fatalf("expected no role, got %q", id.Role)
		}
	})
}
