package service

import (
	"context"
	"errors"
	"testing"

	"sigtransportes/internal/model"
	"sigtransportes/internal/repository"
	repoMocks "sigtransportes/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureSeedUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh store gets all three accounts with hashed passwords", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		for _, su := range seedUsers {
			su := su
			mRepo.On("Create", ctx, su.Username, mock.MatchedBy(func(hash string) bool {
				return bcrypt.CompareHashAndPassword([]byte(hash), []byte(su.Password)) == nil
			}), su.Role).Return(&model.User{Username: su.Username, Role: su.Role}, nil).Once()
		}

		err := EnsureSeedUsers(ctx, mRepo, bcrypt.MinCost)

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("existing usernames are ignored", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, repository.ErrUsernameExists).Times(3)

		err := EnsureSeedUsers(ctx, mRepo, bcrypt.MinCost)

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("other store failures abort", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		mRepo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down")).Once()

		err := EnsureSeedUsers(ctx, mRepo, bcrypt.MinCost)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "seed user admin")
	})
}
