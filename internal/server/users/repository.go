package users

import (
	"context"
)

// Repository is the credential store contract. Create must be a single
// constrained insert: uniqueness is enforced by the store, not by a prior
// read, so concurrent registrations of the same username race safely.
// Violations surface as common.ErrorUsernameExists / common.ErrorEmailExists;
// a missing record as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
