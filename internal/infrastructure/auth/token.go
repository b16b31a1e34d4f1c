package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"autoservice/internal/domain/entities"
	"autoservice/internal/usecase/interfaces"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Identity is what a verified token says about its bearer.
type Identity struct {
	UserID string
	Role   entities.Role
}

func (i Identity) IsAdmin() bool { return i.Role == entities.RoleAdmin }

type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

var _ interfaces.ITokenIssuer = (*TokenIssuer)(nil)

func NewTokenIssuer(secret string, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), lifetime: lifetime, now: time.Now}
}

func (t *TokenIssuer) Issue(userID string, role entities.Role) (string, error) {
	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
		},
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates the token. A missing or unrecognised role claim yields
// RoleNone rather than an error.
func (t *TokenIssuer) Parse(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.Subject, Role: entities.ParseRole(claims.Role)}, nil
}
