package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/accountd/internal/common"
	"github.com/dmitrijs2005/accountd/internal/cryptox"
	"github.com/dmitrijs2005/accountd/internal/server/auth"
	"github.com/dmitrijs2005/accountd/internal/server/config"
	"github.com/google/uuid"
)

// LoginResult is what a successful login returns: the bearer token plus the
// public profile fields of the authenticated user.
type LoginResult struct {
	AccessToken string
	User        *User
}

// Service orchestrates registration, login, and current-user resolution on
// top of the repository, the password hasher, and the token service. It is
// the only component with business rules: duplicate mapping, the
// credential-mismatch policy, and the expiry policy.
type Service struct {
	repo                        Repository
	hasher                      cryptox.Hasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	dummyHash                   string
}

func NewService(repo Repository, hasher cryptox.Hasher, cfg *config.Config) *Service {
	// Hash a throwaway value once so unknown-username logins can burn a
	// verification of comparable cost to the real one.
	dummyHash, _ := hasher.Hash(uuid.NewString())

	return &Service{
		repo:                        repo,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		dummyHash:                   dummyHash,
	}
}

// Register hashes the password and creates the account. The two duplicate
// sentinels pass through untouched; any other store or hashing failure is
// reported as common.ErrorInternal so driver details never leave this layer.
// The plaintext password exists only for the duration of the hashing call.
func (s *Service) Register(ctx context.Context, username, email, password string, fullName *string) (*User, error) {

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameExists) || errors.Is(err, common.ErrorEmailExists) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login authenticates the user and issues a bearer token with the
// configured validity. An unknown username and a wrong password return the
// same common.ErrorUnauthorized, so the caller cannot tell whether the
// account exists.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Verify against a dummy hash so response timing does not
			// reveal whether the account exists.
			s.hasher.Verify(password, s.dummyHash)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	accessToken, err := auth.GenerateToken(user.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{AccessToken: accessToken, User: user}, nil
}

// CurrentUser resolves the account behind a bearer token. Invalid and
// expired tokens both come back as common.ErrorUnauthorized; a valid token
// whose subject no longer exists comes back as common.ErrorNotFound.
func (s *Service) CurrentUser(ctx context.Context, token string) (*User, error) {

	subject, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
