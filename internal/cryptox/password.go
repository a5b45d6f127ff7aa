// Package cryptox provides password hashing for the account service.
//
// Hashing is deliberately slow (bcrypt, adaptive cost factor) with a random
// per-call salt embedded in the output, so two hashes of the same password
// differ. Verification recomputes with the embedded parameters and compares
// in constant time inside bcrypt.
package cryptox

import "golang.org/x/crypto/bcrypt"

// Hasher is the stateless hash/verify capability injected into the user
// service. It exists as an interface so tests can substitute a cheap double.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

// BcryptHasher implements Hasher on top of golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost factor.
// Costs below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. It never returns an error:
// a malformed hash or a mismatch both read as false.
func (h *BcryptHasher) Verify(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
