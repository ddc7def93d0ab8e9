package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository"
)

var (
	ErrMenuNotFound      = repository.ErrMenuNotFound
	ErrMenuNotScheduled  = repository.ErrMenuNotScheduled
	ErrEmptyMenu         = errors.New("menu needs at least one item")
	ErrMissingLaunchTime = errors.New("menu needs a launch date and time")
)

type MenuRepository interface {
	Create(ctx context.Context, menu domain.Menu) (domain.Menu, error)
	FindByID(ctx context.Context, id uint) (domain.Menu, error)
	FindAll(ctx context.Context) ([]domain.Menu, error)
	FindByStatus(ctx context.Context, status domain.MenuStatus) ([]domain.Menu, error)
	FindLatestActive(ctx context.Context) (domain.Menu, error)
	Activate(ctx context.Context, id uint, at time.Time) (domain.Menu, error)
	ListDistinctItems(ctx context.Context) ([]domain.MenuItem, error)
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ScheduleMenu turns a draft into a persisted scheduled menu. The draft must
// carry at least one item and a launch date and time; nothing is written
// otherwise.
func (s *MenuService) ScheduleMenu(ctx context.Context, draft domain.MenuDraft) (domain.Menu, error) {
	if len(draft.Items) == 0 {
		return domain.Menu{}, ErrEmptyMenu
	}
	if draft.Date.IsZero() || draft.LaunchTime.IsZero() {
		return domain.Menu{}, ErrMissingLaunchTime
	}

	items := make([]domain.MenuItem, len(draft.Items))
	for i, item := range draft.Items {
		items[i] = domain.MenuItem{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Quantity:    item.Quantity,
		}
	}

	menu := domain.Menu{
		Date:       draft.Date,
		LaunchTime: draft.LaunchTime,
		Status:     domain.MenuScheduled,
		Items:      items,
	}

	created, err := s.repo.Create(ctx, menu)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MenuService) ActivateMenu(ctx context.Context, id uint) (domain.Menu, error) {
	menu, err := s.repo.Activate(ctx, id, time.Now())
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.repo.Activate -> %w", err)
	}

	return menu, nil
}

// ReuseMenu copies a previous menu's items and date into a fresh draft.
// The source menu is read only, never mutated.
func (s *MenuService) ReuseMenu(ctx context.Context, id uint) (domain.MenuDraft, error) {
	menu, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.MenuDraft{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return domain.DraftFrom(menu), nil
}

func (s *MenuService) GetMenu(ctx context.Context, id uint) (domain.Menu, error) {
	menu, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return menu, nil
}

func (s *MenuService) GetMenus(ctx context.Context) ([]domain.Menu, error) {
	menus, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return menus, nil
}

func (s *MenuService) GetScheduledMenus(ctx context.Context) ([]domain.Menu, error) {
	menus, err := s.repo.FindByStatus(ctx, domain.MenuScheduled)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return menus, nil
}

// GetActiveMenu returns the menu users order from. Several menus can be
// active at once; the most recently activated one wins.
func (s *MenuService) GetActiveMenu(ctx context.Context) (domain.Menu, error) {
	menu, err := s.repo.FindLatestActive(ctx)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("s.repo.FindLatestActive -> %w", err)
	}

	return menu, nil
}

func (s *MenuService) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListDistinctItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDistinctItems -> %w", err)
	}

	return items, nil
}
