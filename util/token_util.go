// api/util/token_util.go

package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	staffhub_errors "github.com/staffhubhq/staffhub/api/errors"
)

// TokenIssuer signs and verifies the bearer tokens handed out at login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token carrying the admin's identifier.
func (t *TokenIssuer) Issue(adminID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"adminId": adminID,
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates the signature and expiry and returns the admin identifier.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, staffhub_errors.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", staffhub_errors.ErrTokenExpired
		}
		return "", staffhub_errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", staffhub_errors.ErrInvalidToken
	}

	adminID, ok := claims["adminId"].(string)
	if !ok || adminID == "" {
		return "", staffhub_errors.ErrInvalidToken
	}
	return adminID, nil
}
