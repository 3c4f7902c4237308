package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
	dom "github.com/atul-mandavkar/inotebook-backend/internal/domain"
	"github.com/atul-mandavkar/inotebook-backend/internal/repo"
	"github.com/atul-mandavkar/inotebook-backend/internal/utils"

	"github.com/jackc/pgx/v5"
)

// ErrInvalidCredentials is returned for unknown email and wrong password
// alike, so a login response never reveals whether an account exists.
var ErrInvalidCredentials = errors.New("email or password not correct")

var ErrEmailTaken = errors.New("email already exists")

// UserService handles registration and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a hashed password.
// The email pre-check gives a friendly error; the unique index on email is
// what actually closes the race between two concurrent registrations.
func (s *UserService) Register(ctx context.Context, name, email, password string) (dom.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return dom.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, name, email, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns the user referenced by a verified token. A missing row here
// is an internal inconsistency, not a caller error: accounts are never deleted,
// so a valid token cannot outlive its user.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	return s.repo.GetByID(ctx, id)
}
