// Package users implements the user aggregate: identity records, their
// Postgres repository, and the registration/login service that issues
// session tokens.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
	"github.com/dmitrijs2005/bookkeeper/internal/server/auth"
	"github.com/dmitrijs2005/bookkeeper/internal/server/config"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// TokenValidityDuration exposes the configured session lifetime so the
// transport layer can align the cookie MaxAge with token expiry.
func (s *Service) TokenValidityDuration() time.Duration {
	return s.tokenValidityDuration
}

// Register stores a new user with a bcrypt-hashed password. The plaintext
// never reaches the repository.
func (s *Service) Register(ctx context.Context, username string, password string, role string) (*User, error) {

	if username == "" || password == "" || !ValidRole(role) {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		// hashing failure is unexpected, not a user-facing condition
		return nil, common.ErrorInternal
	}

	user := &User{
		UserName:     username,
		PasswordHash: hash,
		Role:         role,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials against the stored hash and, on success,
// issues a signed session token carrying the user's ID and role.
//
// Unknown users and wrong passwords are both reported as
// common.ErrorUnauthorized so the response does not reveal which one
// occurred.
func (s *Service) Login(ctx context.Context, userName string, password string) (string, error) {

	user, err := s.repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
