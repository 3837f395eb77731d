package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clubsite/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTCodec both issues and verifies HS256 JWTs signed with a shared secret.
// It satisfies domain.TokenIssuer and domain.TokenVerifier.
type JWTCodec struct {
	secret []byte
}

func NewJWTCodec(secret string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret)}
}

var _ domain.TokenIssuer = (*JWTCodec)(nil)
var _ domain.TokenVerifier = (*JWTCodec)(nil)

func (c *JWTCodec) Issue(userID, role string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *JWTCodec) Verify(tokenString string) (string, string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return "", "", fmt.Errorf("invalid token")
	}
	return claims.Subject, claims.Role, nil
}
