package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository/dao"
)

func TestBookingService_BookMeal_SequentialTokens(t *testing.T) {
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newBookingService(db)

	menu := activeMenu(t, menuSvc, domain.MenuItem{Name: "Idli", Price: 20, Quantity: 5})

	for i := 1; i <= 3; i++ {
		token, err := svc.BookMeal(context.Background(), menu.ID, "Idli", uint(i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("TOKEN-%d", i), token.Token)
		assert.Equal(t, i, token.TokenNumber)
		assert.Equal(t, uint(i), token.UserID)
		assert.Equal(t, menu.ID, token.MenuID)
		assert.False(t, token.BookedAt.IsZero())
	}

	found, err := menuSvc.GetMenu(context.Background(), menu.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)
}

func TestBookingService_BookMeal_SellsOut(t *testing.T) {
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newBookingService(db)

	menu := activeMenu(t, menuSvc, domain.MenuItem{Name: "Idli", Price: 20, Quantity: 2})

	first, err := svc.BookMeal(context.Background(), menu.ID, "Idli", 1)
	require.NoError(t, err)
	assert.Equal(t, "TOKEN-1", first.Token)

	second, err := svc.BookMeal(context.Background(), menu.ID, "Idli", 2)
	require.NoError(t, err)
	assert.Equal(t, "TOKEN-2", second.Token)

	_, err = svc.BookMeal(context.Background(), menu.ID, "Idli", 3)
	assert.ErrorIs(t, err, ErrMealSoldOut)

	found, err := menuSvc.GetMenu(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Items[0].Quantity)

	// Each successful booking left exactly one ledger row; the failed one none.
	var records []dao.SalesRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "online", rec.Source)
		assert.Equal(t, "Idli", rec.MealName)
		assert.Equal(t, 20.0, rec.Amount)
		assert.Equal(t, 1, rec.Quantity)
		require.NotNil(t, rec.MenuID)
		assert.Equal(t, menu.ID, *rec.MenuID)
	}
}

func TestBookingService_BookMeal_Errors(t *testing.T) {
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newBookingService(db)

	scheduled := scheduleMenu(t, menuSvc, domain.MenuItem{Name: "Idli", Price: 20, Quantity: 2})
	active := activeMenu(t, menuSvc, domain.MenuItem{Name: "Dosa", Price: 30, Quantity: 5})

	_, err := svc.BookMeal(context.Background(), 999, "Idli", 1)
	assert.ErrorIs(t, err, ErrMenuNotFound)

	_, err = svc.BookMeal(context.Background(), scheduled.ID, "Idli", 1)
	assert.ErrorIs(t, err, ErrMenuNotActive)

	_, err = svc.BookMeal(context.Background(), active.ID, "Biryani", 1)
	assert.ErrorIs(t, err, ErrMealNotFound)

	// Nothing was written by the rejected bookings.
	var tokens []dao.MealToken
	require.NoError(t, db.Find(&tokens).Error)
	assert.Empty(t, tokens)
}

func TestBookingService_BookMeal_CountersPerMealAndMenu(t *testing.T) {
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newBookingService(db)

	menu := activeMenu(t, menuSvc,
		domain.MenuItem{Name: "Idli", Price: 20, Quantity: 5},
		domain.MenuItem{Name: "Dosa", Price: 30, Quantity: 5},
	)
	other := activeMenu(t, menuSvc, domain.MenuItem{Name: "Idli", Price: 20, Quantity: 5})

	idli, err := svc.BookMeal(context.Background(), menu.ID, "Idli", 1)
	require.NoError(t, err)
	dosa, err := svc.BookMeal(context.Background(), menu.ID, "Dosa", 1)
	require.NoError(t, err)
	otherIdli, err := svc.BookMeal(context.Background(), other.ID, "Idli", 1)
	require.NoError(t, err)

	// Numbering is independent per (meal, menu).
	assert.Equal(t, "TOKEN-1", idli.Token)
	assert.Equal(t, "TOKEN-1", dosa.Token)
	assert.Equal(t, "TOKEN-1", otherIdli.Token)
}

func TestBookingService_GetTokens(t *testing.T) {
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newBookingService(db)

	menu := activeMenu(t, menuSvc, domain.MenuItem{Name: "Idli", Price: 20, Quantity: 5})

	_, err := svc.BookMeal(context.Background(), menu.ID, "Idli", 1)
	require.NoError(t, err)
	_, err = svc.BookMeal(context.Background(), menu.ID, "Idli", 1)
	require.NoError(t, err)
	_, err = svc.BookMeal(context.Background(), menu.ID, "Idli", 2)
	require.NoError(t, err)

	mine, err := svc.GetUserTokens(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, token := range mine {
		assert.Equal(t, uint(1), token.UserID)
	}

	all, err := svc.GetMenuTokens(context.Background(), menu.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "TOKEN-1", all[0].Token)
	assert.Equal(t, "TOKEN-3", all[2].Token)

	none, err := svc.GetUserTokens(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}
