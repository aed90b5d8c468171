package service_test

import (
	"context"
	"testing"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByEmail", ctx, "anna@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).
			Return(nil)

		user, err := svc.CreateUser(ctx, &domain.User{Name: "Anna", Email: "anna@example.com"})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("Empty name rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		user, err := svc.CreateUser(ctx, &domain.User{Name: "", Email: "anna@example.com"})
		assert.Nil(t, user)
		assert.True(t, domain.IsValidation(err))
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Malformed email rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		user, err := svc.CreateUser(ctx, &domain.User{Name: "Anna", Email: "not-an-email"})
		assert.Nil(t, user)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Duplicate email is a conflict, not bad input", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByEmail", ctx, "anna@example.com").
			Return(&domain.User{ID: 9, Email: "anna@example.com"}, nil)

		user, err := svc.CreateUser(ctx, &domain.User{Name: "Anna", Email: "anna@example.com"})
		assert.Nil(t, user)
		assert.Error(t, err)
		assert.False(t, domain.IsValidation(err))
		assert.False(t, domain.IsNotFound(err))
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_PatchUser(t *testing.T) {
	ctx := context.Background()

	name := "Anna B"
	email := "anna.b@example.com"

	t.Run("Patches only supplied fields", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.PatchUser(ctx, 1, service.UserPatch{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, "Anna B", user.Name)
		assert.Equal(t, "anna@example.com", user.Email)
		userRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Email uniqueness excludes the patched user", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"}, nil)
		userRepo.On("GetByEmail", ctx, email).
			Return(&domain.User{ID: 1, Email: email}, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.PatchUser(ctx, 1, service.UserPatch{Email: &email})
		assert.NoError(t, err)
		assert.Equal(t, email, user.Email)
	})

	t.Run("Email held by another user conflicts", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "Anna", Email: "anna@example.com"}, nil)
		userRepo.On("GetByEmail", ctx, email).
			Return(&domain.User{ID: 2, Email: email}, nil)

		user, err := svc.PatchUser(ctx, 1, service.UserPatch{Email: &email})
		assert.Nil(t, user)
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := service.NewUserService(userRepo)

		userRepo.On("GetByID", ctx, int64(404)).
			Return(nil, domain.NewNotFoundError("user not found"))

		user, err := svc.PatchUser(ctx, 404, service.UserPatch{Name: &name})
		assert.Nil(t, user)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(mockUserRepo)
	svc := service.NewUserService(userRepo)

	userRepo.On("Delete", ctx, int64(1)).Return(nil)

	assert.NoError(t, svc.DeleteUser(ctx, 1))
	userRepo.AssertExpectations(t)
}
