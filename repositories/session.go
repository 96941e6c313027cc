package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTSessions resolves session tokens without a session store: the
// token itself carries the username, signed HS256.
type JWTSessions struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSessions(secret string, ttl time.Duration) *JWTSessions {
	return &JWTSessions{secret: []byte(secret), ttl: ttl}
}

// IssueToken mints a session token for username.
func (s *JWTSessions) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// FindUsernameWithToken validates tokenString and returns the
// username it was issued for. Invalid or expired tokens yield
// ErrUnauthorized.
func (s *JWTSessions) FindUsernameWithToken(_ context.Context, tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Username == "" {
		return "", ErrUnauthorized
	}
	return claims.Username, nil
}
