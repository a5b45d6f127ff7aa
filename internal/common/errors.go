// Package common defines shared constants and sentinel errors used across
// client and server layers of the account service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Uniqueness conflicts, one per constrained column. The repository maps
	// the violated database constraint to the matching sentinel so callers
	// never inspect driver error text.
	ErrorUsernameExists = errors.New("username already exists")
	ErrorEmailExists    = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
