package users

import "time"

// User is one account record. PasswordHash is the bcrypt hash, never the
// plaintext. FullName is nil when the user did not provide one.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
