package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	Insert(ctx context.Context, user *User) error
	ByUsername(ctx context.Context, username string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a user with a freshly hashed password. The uniqueness
// pre-check gives the friendly error; the unique index behind Insert
// backstops the race between two registrations of the same name.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a login attempt. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so the login form
// cannot be used to probe which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.ByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
