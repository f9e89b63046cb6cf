package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sigtransportes/internal/repository"
)

// ErrInvalidCredentials is returned for any non-matching username/password
// pair. It deliberately does not reveal which of the two was wrong.
var ErrInvalidCredentials = errors.New("incorrect credentials")

// AuthService validates username/password pairs against stored credentials.
type AuthService interface {
	// Login returns the role stored for the user when the credentials match,
	// or ErrInvalidCredentials otherwise. Exactly one lookup; no rate
	// limiting, no lockout.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	// bcrypt comparison is constant-time on the hash input.
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return u.Role, nil
}
