// Package auth implements the session credential lifecycle: signed
// time-bounded JWTs, bcrypt password hashing, and the HTTP cookie that
// carries the session token.
//
// Tokens are stateless: validity is determined entirely by signature
// correctness and expiry, so a token cannot be invalidated before it
// expires. Known limitation, acceptable with a short validity window.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in session tokens: the standard
// registered claims plus the subject's user ID and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Role   string
}

// GenerateToken issues an HS256-signed token asserting the given user ID
// and role, expiring after validityDuration.
func GenerateToken(userID string, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the token's signature and expiry and returns the
// asserted user ID and role. The signing method is pinned to HS256, so a
// token claiming any other algorithm fails signature verification.
//
// Errors are collapsed into two sentinels: common.ErrTokenExpired for a
// well-signed token past its expiry, common.ErrInvalidToken for everything
// else (malformed structure, bad signature, wrong method). Attacker-
// controlled input is a normal rejection, never a panic.
func ParseToken(tokenString string, secretKey []byte) (string, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserID, claims.Role, nil
}
