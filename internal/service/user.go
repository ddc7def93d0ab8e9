package service

import (
	"context"
	"fmt"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	IsAdminEmail(ctx context.Context, email string) (bool, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// IsAdmin reports whether the user's email is on the admins membership list.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	isAdmin, err := s.repo.IsAdminEmail(ctx, user.Email)
	if err != nil {
		return false, fmt.Errorf("s.repo.IsAdminEmail -> %w", err)
	}

	return isAdmin, nil
}
