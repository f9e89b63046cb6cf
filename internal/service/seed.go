package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"sigtransportes/internal/repository"
)

type seedUser struct {
	Username string
	Password string
	Role     string
}

// The three fixed accounts of the system. Re-asserted on every startup.
var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", Role: "Admin"},
	{Username: "supervisor", Password: "super123", Role: "Supervisor"},
	{Username: "empleado", Password: "emple123", Role: "Empleado"},
}

// EnsureSeedUsers inserts the fixed accounts, hashing their passwords with
// the given bcrypt cost. An already-existing username is explicitly ignored;
// any other failure aborts startup.
func EnsureSeedUsers(ctx context.Context, users repository.UserRepository, cost int) error {
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), cost)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", su.Username, err)
		}
		if _, err := users.Create(ctx, su.Username, string(hash), su.Role); err != nil {
			if errors.Is(err, repository.ErrUsernameExists) {
				continue
			}
			return fmt.Errorf("seed user %s: %w", su.Username, err)
		}
	}
	return nil
}
