package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository"
	"cafeteria-api/internal/repository/dao"
)

// newTestDB opens a fresh in-memory database per test. The DSN carries the
// test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(dao.NewMenuDAO(db)))
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(repository.NewTokenRepository(dao.NewTokenDAO(db)))
}

func newSalesService(db *gorm.DB) *SalesService {
	return NewSalesService(repository.NewSalesRepository(dao.NewSalesDAO(db)))
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(dao.NewUserDAO(db)))
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
}

// scheduleMenu persists a scheduled menu with the given items.
func scheduleMenu(t *testing.T, svc *MenuService, items ...domain.MenuItem) domain.Menu {
	t.Helper()

	draft := domain.MenuDraft{
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		LaunchTime: time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
	}
	for _, item := range items {
		require.NoError(t, draft.Submit(domain.Creating(), item))
	}

	menu, err := svc.ScheduleMenu(context.Background(), draft)
	require.NoError(t, err)

	return menu
}

// activeMenu persists a menu and flips it to active.
func activeMenu(t *testing.T, svc *MenuService, items ...domain.MenuItem) domain.Menu {
	t.Helper()

	menu := scheduleMenu(t, svc, items...)
	menu, err := svc.ActivateMenu(context.Background(), menu.ID)
	require.NoError(t, err)

	return menu
}
