package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// AuthService defines the account use cases: registration and credential
// verification. Session issuance is a transport concern and lives with the
// HTTP layer.
type AuthService interface {
	// Register creates a new account. The username must be unused
	// (ErrUsernameTaken otherwise). Registration does not log the user in.
	Register(ctx context.Context, username, password string) (*model.User, error)

	// Login verifies credentials and returns the account on success.
	// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	hashCost int
}

// NewAuthService constructs a new AuthService hashing passwords with bcrypt
// at the default cost.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users, hashCost: bcrypt.DefaultCost}
}

func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return stored, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
