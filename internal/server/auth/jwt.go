// Package auth issues and validates the bearer tokens of the account
// service. Tokens are HS256-signed JWTs carrying the username as subject;
// they are authenticated but not encrypted, and die at expiry (no
// revocation).
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints a signed token for the given subject, valid for
// validityDuration from now. A zero or negative duration produces a token
// that is already expired.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the token signature and expiry and returns
// the embedded subject. Forged, tampered, or malformed tokens yield
// common.ErrInvalidToken; a genuine token past its expiry yields
// common.ErrTokenExpired. The signature is checked before the expiry so a
// rejected token reveals nothing about why.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
