package service

import (
	"context"
	"fmt"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository"
)

var (
	ErrMenuNotActive = repository.ErrMenuNotActive
	ErrMealNotFound  = repository.ErrMealNotFound
	ErrMealSoldOut   = repository.ErrMealSoldOut
)

type TokenRepository interface {
	IssueToken(ctx context.Context, menuID uint, mealName string, userID uint) (domain.MealToken, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.MealToken, error)
	FindByMenuID(ctx context.Context, menuID uint) ([]domain.MealToken, error)
}

type BookingService struct {
	repo TokenRepository
}

func NewBookingService(repo TokenRepository) *BookingService {
	return &BookingService{
		repo: repo,
	}
}

// BookMeal books one unit of mealName from an active menu for the user and
// returns the issued token. The decrement, token number, token row and sales
// row are one transaction, so a sold-out or failed booking leaves no trace.
func (s *BookingService) BookMeal(ctx context.Context, menuID uint, mealName string, userID uint) (domain.MealToken, error) {
	token, err := s.repo.IssueToken(ctx, menuID, mealName, userID)
	if err != nil {
		return domain.MealToken{}, fmt.Errorf("s.repo.IssueToken -> %w", err)
	}

	return token, nil
}

func (s *BookingService) GetUserTokens(ctx context.Context, userID uint) ([]domain.MealToken, error) {
	tokens, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return tokens, nil
}

func (s *BookingService) GetMenuTokens(ctx context.Context, menuID uint) ([]domain.MealToken, error) {
	tokens, err := s.repo.FindByMenuID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMenuID -> %w", err)
	}

	return tokens, nil
}
