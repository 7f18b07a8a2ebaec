package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mistgo/inventory-api/internal/core/domain"
	"github.com/mistgo/inventory-api/internal/core/password"
	"github.com/mistgo/inventory-api/internal/core/ports"
	"github.com/mistgo/inventory-api/internal/core/token"
)

// decoyHash is a valid bcrypt record for a random throwaway password. Login
// compares against it when the username does not exist so that the two
// failure paths take the same time.
const decoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register hashes the password, inserts the user, and issues a token.
// Username uniqueness is settled by the store's unique index, not by a
// pre-check: a racing duplicate surfaces as domain.ErrUsernameTaken.
func (s *AuthService) Register(ctx context.Context, username, plain string) (string, *domain.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	signed, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return signed, created, nil
}

// Login returns a token for valid credentials. Unknown username and wrong
// password collapse into one ErrInvalidCredentials outcome; the hash
// comparison runs in both cases so timing does not separate them.
func (s *AuthService) Login(ctx context.Context, username, plain string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			password.Verify(plain, decoyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(plain, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return signed, user, nil
}
