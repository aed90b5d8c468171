package service

import (
	"context"
	"fmt"
	"strings"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := checkName(user.Name); err != nil {
		return nil, err
	}
	if err := checkEmail(user.Email); err != nil {
		return nil, err
	}
	// Duplicate email is a conflict, not bad input: it surfaces as a plain
	// error so the boundary reports it as an internal failure. The unique
	// constraint backs this check up under concurrency.
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already in use", user.Email)
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) PatchUser(ctx context.Context, id int64, patch UserPatch) (*domain.User, error) {
	if patch.Name != nil {
		if err := checkName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		if err := checkEmail(*patch.Email); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		// The uniqueness check excludes the user being patched.
		existing, err := s.userRepo.GetByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("email %s already in use", *patch.Email)
		}
		user.Email = *patch.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

func checkName(name string) error {
	if name == "" {
		return domain.NewValidationError("user name must not be empty")
	}
	return nil
}

func checkEmail(email string) error {
	if !strings.Contains(email, "@") {
		return domain.NewValidationError("malformed user email")
	}
	return nil
}
