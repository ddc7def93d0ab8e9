package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMenuNotActive = errors.New("menu is not active")
	ErrMealNotFound  = errors.New("meal not found on menu")
	ErrMealSoldOut   = errors.New("meal is sold out")
)

type MealToken struct {
	ID          uint      `gorm:"primaryKey"`
	Token       string    `gorm:"not null"`
	TokenNumber int       `gorm:"not null"`
	UserID      uint      `gorm:"not null;index"`
	MealName    string    `gorm:"not null"`
	MenuID      uint      `gorm:"not null;index"`
	BookedAt    time.Time `gorm:"not null"`
}

func (MealToken) TableName() string {
	return "meal_tokens"
}

// TokenCounter holds the last issued token number per (menu, meal). Bumping
// it is the single serialization point of the booking path.
type TokenCounter struct {
	ID         uint   `gorm:"primaryKey"`
	MenuID     uint   `gorm:"not null;uniqueIndex:idx_token_counters_menu_meal"`
	MealName   string `gorm:"not null;uniqueIndex:idx_token_counters_menu_meal"`
	LastNumber int    `gorm:"not null"`
}

type TokenDAO struct {
	db *gorm.DB
}

func NewTokenDAO(db *gorm.DB) *TokenDAO {
	return &TokenDAO{
		db: db,
	}
}

// IssueToken books one unit of a meal: it decrements the remaining quantity,
// assigns the next token number and appends the token and ledger rows, all in
// one transaction. A failed step rolls back every write, so a token never
// exists without its decrement and sales entry.
func (d *TokenDAO) IssueToken(ctx context.Context, menuID uint, mealName string, userID uint) (MealToken, error) {
	var token MealToken

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var menu Menu
		if err := tx.First(&menu, menuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuNotFound
			}

			return err
		}
		if menu.Status != "active" {
			return ErrMenuNotActive
		}

		var item MenuItem
		err := tx.Where("menu_id = ? AND name = ?", menuID, mealName).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotFound
			}

			return err
		}

		// Conditional decrement: zero rows affected means another booking
		// took the last unit first.
		result := tx.Model(&MenuItem{}).
			Where("menu_id = ? AND name = ? AND quantity > 0", menuID, mealName).
			UpdateColumn("quantity", gorm.Expr("quantity - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMealSoldOut
		}

		var next int
		err = tx.Raw(`INSERT INTO token_counters (menu_id, meal_name, last_number)
			VALUES (?, ?, 1)
			ON CONFLICT (menu_id, meal_name)
			DO UPDATE SET last_number = token_counters.last_number + 1
			RETURNING last_number`, menuID, mealName).Scan(&next).Error
		if err != nil {
			return err
		}

		now := time.Now()
		token = MealToken{
			Token:       fmt.Sprintf("TOKEN-%d", next),
			TokenNumber: next,
			UserID:      userID,
			MealName:    mealName,
			MenuID:      menuID,
			BookedAt:    now,
		}
		if err = tx.Create(&token).Error; err != nil {
			return err
		}

		sale := SalesRecord{
			MealName: mealName,
			MenuID:   &menuID,
			UserID:   &userID,
			Amount:   item.Price,
			Quantity: 1,
			Source:   "online",
			SoldAt:   now,
		}

		return tx.Create(&sale).Error
	})
	if err != nil {
		return MealToken{}, err
	}

	return token, nil
}

func (d *TokenDAO) FindByUserID(ctx context.Context, userID uint) ([]MealToken, error) {
	var tokens []MealToken

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Find(&tokens)
	if result.Error != nil {
		return nil, result.Error
	}

	return tokens, nil
}

func (d *TokenDAO) FindByMenuID(ctx context.Context, menuID uint) ([]MealToken, error) {
	var tokens []MealToken

	result := d.db.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Order("booked_at ASC").
		Find(&tokens)
	if result.Error != nil {
		return nil, result.Error
	}

	return tokens, nil
}
