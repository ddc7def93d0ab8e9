package repository

import (
	"context"
	"fmt"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository/dao"
)

var (
	ErrMenuNotActive = dao.ErrMenuNotActive
	ErrMealNotFound  = dao.ErrMealNotFound
	ErrMealSoldOut   = dao.ErrMealSoldOut
)

type TokenDAO interface {
	IssueToken(ctx context.Context, menuID uint, mealName string, userID uint) (dao.MealToken, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.MealToken, error)
	FindByMenuID(ctx context.Context, menuID uint) ([]dao.MealToken, error)
}

type TokenRepository struct {
	dao TokenDAO
}

func NewTokenRepository(dao TokenDAO) *TokenRepository {
	return &TokenRepository{
		dao: dao,
	}
}

func (r *TokenRepository) daoToDomain(t dao.MealToken) domain.MealToken {
	return domain.MealToken{
		ID:          t.ID,
		Token:       t.Token,
		TokenNumber: t.TokenNumber,
		UserID:      t.UserID,
		MealName:    t.MealName,
		MenuID:      t.MenuID,
		BookedAt:    t.BookedAt,
	}
}

func (r *TokenRepository) daosToDomain(tokens []dao.MealToken) []domain.MealToken {
	out := make([]domain.MealToken, len(tokens))
	for i, t := range tokens {
		out[i] = r.daoToDomain(t)
	}

	return out
}

func (r *TokenRepository) IssueToken(ctx context.Context, menuID uint, mealName string, userID uint) (domain.MealToken, error) {
	token, err := r.dao.IssueToken(ctx, menuID, mealName, userID)
	if err != nil {
		return domain.MealToken{}, fmt.Errorf("r.dao.IssueToken -> %w", err)
	}

	return r.daoToDomain(token), nil
}

func (r *TokenRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.MealToken, error) {
	tokens, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(tokens), nil
}

func (r *TokenRepository) FindByMenuID(ctx context.Context, menuID uint) ([]domain.MealToken, error) {
	tokens, err := r.dao.FindByMenuID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMenuID -> %w", err)
	}

	return r.daosToDomain(tokens), nil
}
