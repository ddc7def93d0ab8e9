package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuNotScheduled = errors.New("menu is not in scheduled status")
)

type Menu struct {
	ID          uint       `gorm:"primaryKey"`
	Date        time.Time  `gorm:"not null"`
	LaunchTime  time.Time  `gorm:"not null"`
	Status      string     `gorm:"not null;default:scheduled"`
	ActivatedAt *time.Time `gorm:"index"`
	Items       []MenuItem `gorm:"foreignKey:MenuID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Menu) TableName() string {
	return "cafeteria_menus"
}

type MenuItem struct {
	ID          uint    `gorm:"primaryKey"`
	MenuID      uint    `gorm:"not null;uniqueIndex:idx_menu_items_menu_name"`
	Name        string  `gorm:"not null;uniqueIndex:idx_menu_items_menu_name"`
	Price       float64 `gorm:"not null"`
	Description string
	Quantity    int `gorm:"not null"`
}

type MenuDAO struct {
	db *gorm.DB
}

func NewMenuDAO(db *gorm.DB) *MenuDAO {
	return &MenuDAO{
		db: db,
	}
}

// Insert persists a menu together with its items in one create.
func (d *MenuDAO) Insert(ctx context.Context, menu Menu) (Menu, error) {
	result := d.db.WithContext(ctx).Create(&menu)
	if result.Error != nil {
		return Menu{}, result.Error
	}

	return menu, nil
}

func (d *MenuDAO) FindByID(ctx context.Context, id uint) (Menu, error) {
	var menu Menu

	result := d.db.WithContext(ctx).Preload("Items").First(&menu, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Menu{}, ErrMenuNotFound
		}

		return Menu{}, result.Error
	}

	return menu, nil
}

func (d *MenuDAO) FindAll(ctx context.Context) ([]Menu, error) {
	var menus []Menu

	result := d.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

// FindAllOldestFirst returns every menu in creation order. Used to build the
// item catalog where the first occurrence of a name wins.
func (d *MenuDAO) FindAllOldestFirst(ctx context.Context) ([]Menu, error) {
	var menus []Menu

	result := d.db.WithContext(ctx).Preload("Items").Order("created_at ASC").Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

func (d *MenuDAO) FindByStatus(ctx context.Context, status string) ([]Menu, error) {
	var menus []Menu

	result := d.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

// FindLatestActive returns the most recently activated active menu.
func (d *MenuDAO) FindLatestActive(ctx context.Context) (Menu, error) {
	var menu Menu

	result := d.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", "active").
		Order("activated_at DESC").
		First(&menu)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Menu{}, ErrMenuNotFound
		}

		return Menu{}, result.Error
	}

	return menu, nil
}

// Activate flips one menu from scheduled to active and stamps the activation
// time. The update is conditional on the current status, so activating twice
// or activating an unknown menu fails without touching anything.
func (d *MenuDAO) Activate(ctx context.Context, id uint, at time.Time) (Menu, error) {
	result := d.db.WithContext(ctx).
		Model(&Menu{}).
		Where("id = ? AND status = ?", id, "scheduled").
		Updates(map[string]interface{}{"status": "active", "activated_at": at})
	if result.Error != nil {
		return Menu{}, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Menu{}, err
		}

		return Menu{}, ErrMenuNotScheduled
	}

	return d.FindByID(ctx, id)
}
