package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mikescor/local-library/internal/domain/accounts"
	"github.com/mikescor/local-library/internal/pkg/logger"
)

// accountService implements the AccountService interface
type accountService struct {
	userRepo accounts.UserRepository
	logger   logger.Logger
}

// NewAccountService creates a new accountService instance
func NewAccountService(userRepo accounts.UserRepository, logger logger.Logger) (accounts.AccountService, error) {
	return &accountService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Authenticate verifies a username/password pair. Lookup failures and
// hash mismatches both surface as ErrInvalidCredentials so a login page
// cannot be used to probe usernames.
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*accounts.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	s.logger.Info("Authenticated user ", username)
	return user, nil
}

// GetByID retrieves a user by its unique ID.
func (s *accountService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Register creates a new user with a bcrypt hash of the given password.
func (s *accountService) Register(ctx context.Context, username, password string, permissions []string) (*accounts.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &accounts.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Permissions:  permissions,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user ", username)
	return user, nil
}
