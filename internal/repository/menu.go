package repository

import (
	"context"
	"fmt"
	"time"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository/dao"
)

var (
	ErrMenuNotFound     = dao.ErrMenuNotFound
	ErrMenuNotScheduled = dao.ErrMenuNotScheduled
)

type MenuDAO interface {
	Insert(ctx context.Context, menu dao.Menu) (dao.Menu, error)
	FindByID(ctx context.Context, id uint) (dao.Menu, error)
	FindAll(ctx context.Context) ([]dao.Menu, error)
	FindAllOldestFirst(ctx context.Context) ([]dao.Menu, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Menu, error)
	FindLatestActive(ctx context.Context) (dao.Menu, error)
	Activate(ctx context.Context, id uint, at time.Time) (dao.Menu, error)
}

type MenuRepository struct {
	dao MenuDAO
}

func NewMenuRepository(dao MenuDAO) *MenuRepository {
	return &MenuRepository{
		dao: dao,
	}
}

func (r *MenuRepository) itemDomainToDao(item domain.MenuItem) dao.MenuItem {
	return dao.MenuItem{
		ID:          item.ID,
		MenuID:      item.MenuID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
}

func (r *MenuRepository) itemDaoToDomain(item dao.MenuItem) domain.MenuItem {
	return domain.MenuItem{
		ID:          item.ID,
		MenuID:      item.MenuID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Quantity:    item.Quantity,
	}
}

func (r *MenuRepository) domainToDao(m domain.Menu) dao.Menu {
	items := make([]dao.MenuItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = r.itemDomainToDao(item)
	}

	return dao.Menu{
		ID:          m.ID,
		Date:        m.Date,
		LaunchTime:  m.LaunchTime,
		Status:      string(m.Status),
		ActivatedAt: m.ActivatedAt,
		Items:       items,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MenuRepository) daoToDomain(m dao.Menu) domain.Menu {
	items := make([]domain.MenuItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = r.itemDaoToDomain(item)
	}

	return domain.Menu{
		ID:          m.ID,
		Date:        m.Date,
		LaunchTime:  m.LaunchTime,
		Status:      domain.MenuStatus(m.Status),
		ActivatedAt: m.ActivatedAt,
		Items:       items,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MenuRepository) daosToDomain(menus []dao.Menu) []domain.Menu {
	out := make([]domain.Menu, len(menus))
	for i, m := range menus {
		out[i] = r.daoToDomain(m)
	}

	return out
}

func (r *MenuRepository) Create(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(menu))
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (domain.Menu, error) {
	menu, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(menu), nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]domain.Menu, error) {
	menus, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(menus), nil
}

func (r *MenuRepository) FindByStatus(ctx context.Context, status domain.MenuStatus) ([]domain.Menu, error) {
	menus, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomain(menus), nil
}

func (r *MenuRepository) FindLatestActive(ctx context.Context) (domain.Menu, error) {
	menu, err := r.dao.FindLatestActive(ctx)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.FindLatestActive -> %w", err)
	}

	return r.daoToDomain(menu), nil
}

func (r *MenuRepository) Activate(ctx context.Context, id uint, at time.Time) (domain.Menu, error) {
	menu, err := r.dao.Activate(ctx, id, at)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.dao.Activate -> %w", err)
	}

	return r.daoToDomain(menu), nil
}

// ListDistinctItems walks every menu oldest first and keeps the first item
// seen for each name. Backs the admin form's pre-fill dropdown.
func (r *MenuRepository) ListDistinctItems(ctx context.Context) ([]domain.MenuItem, error) {
	menus, err := r.dao.FindAllOldestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllOldestFirst -> %w", err)
	}

	seen := make(map[string]bool)
	var items []domain.MenuItem
	for _, menu := range menus {
		for _, item := range menu.Items {
			if seen[item.Name] {
				continue
			}
			seen[item.Name] = true
			items = append(items, r.itemDaoToDomain(item))
		}
	}

	return items, nil
}
