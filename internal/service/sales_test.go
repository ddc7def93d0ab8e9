package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository/dao"
)

func TestSalesService_RecordOfflineSale(t *testing.T) {
	db := newTestDB(t)
	svc := newSalesService(db)

	sale, err := svc.RecordOfflineSale(context.Background(), domain.OfflineSale{
		MealName:    "Idli",
		Quantity:    3,
		Amount:      60,
		PaymentType: "Cash",
	})
	require.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.False(t, sale.SoldAt.IsZero(), "SoldAt defaults to now")

	// The counter sale and its ledger mirror were written together.
	var offline []dao.OfflineSale
	require.NoError(t, db.Find(&offline).Error)
	require.Len(t, offline, 1)
	assert.Equal(t, "Idli", offline[0].MealName)
	assert.Equal(t, 3, offline[0].Quantity)

	var records []dao.SalesRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "offline", records[0].Source)
	assert.Equal(t, "Cash", records[0].PaymentType)
	assert.Equal(t, 60.0, records[0].Amount)
	assert.Equal(t, 3, records[0].Quantity)
	assert.Nil(t, records[0].MenuID)
	assert.Nil(t, records[0].UserID)
}

func TestSalesService_TodaysOnlineSales(t *testing.T) {
	db := newTestDB(t)
	svc := newSalesService(db)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	menuID := uint(1)
	userID := uint(1)

	seed := []dao.SalesRecord{
		{MealName: "Idli", MenuID: &menuID, UserID: &userID, Amount: 20, Quantity: 1, Source: "online", SoldAt: now},
		{MealName: "Idli", MenuID: &menuID, UserID: &userID, Amount: 20, Quantity: 1, Source: "online", SoldAt: now},
		// Legacy rows without a quantity still count as one unit.
		{MealName: "Dosa", MenuID: &menuID, UserID: &userID, Amount: 30, Quantity: 0, Source: "online", SoldAt: now},
		{MealName: "Idli", MenuID: &menuID, UserID: &userID, Amount: 20, Quantity: 1, Source: "online", SoldAt: yesterday},
		{MealName: "Vada", Amount: 15, Quantity: 1, Source: "offline", PaymentType: "Cash", SoldAt: now},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	orders, totals, err := svc.TodaysOnlineSales(context.Background())
	require.NoError(t, err)

	assert.Len(t, orders, 3, "yesterday's and offline rows are excluded")
	assert.Equal(t, map[string]int{"Idli": 2, "Dosa": 1}, totals)
}

func TestSalesService_Analytics(t *testing.T) {
	db := newTestDB(t)
	svc := newSalesService(db)

	day1 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	seed := []dao.SalesRecord{
		{MealName: "Idli", Amount: 60, Quantity: 3, Source: "online", SoldAt: day1},
		{MealName: "Dosa", Amount: 40, Quantity: 2, Source: "online", SoldAt: day1},
		{MealName: "Idli", Amount: 200, Quantity: 10, Source: "online", SoldAt: day2},
		{MealName: "Vada", Amount: 50, Quantity: 5, Source: "offline", PaymentType: "Cash", SoldAt: day1},
		{MealName: "Vada", Amount: 50, Quantity: 5, Source: "offline", PaymentType: "UPI", SoldAt: day2},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	require.Len(t, analytics.Daily, 2)
	assert.Equal(t, "2026-08-30", analytics.Daily[0].Day)
	assert.Equal(t, 100.0, analytics.Daily[0].Online)
	assert.Equal(t, 50.0, analytics.Daily[0].Offline)
	assert.Equal(t, "2026-08-31", analytics.Daily[1].Day)
	assert.Equal(t, 200.0, analytics.Daily[1].Online)
	assert.Equal(t, 50.0, analytics.Daily[1].Offline)

	// Online grows 100 per day, so day three projects to 300. Offline is flat.
	require.NotNil(t, analytics.OnlineForecast)
	assert.InDelta(t, 100.0, analytics.OnlineForecast.Slope, 1e-9)
	assert.InDelta(t, 300.0, analytics.OnlineForecast.Predicted, 1e-9)

	require.NotNil(t, analytics.OfflineForecast)
	assert.InDelta(t, 0.0, analytics.OfflineForecast.Slope, 1e-9)
	assert.InDelta(t, 50.0, analytics.OfflineForecast.Predicted, 1e-9)
}

func TestSalesService_Analytics_SingleDay(t *testing.T) {
	db := newTestDB(t)
	svc := newSalesService(db)

	rec := dao.SalesRecord{MealName: "Idli", Amount: 20, Quantity: 1, Source: "online", SoldAt: time.Now()}
	require.NoError(t, db.Create(&rec).Error)

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Len(t, analytics.Daily, 1)
	assert.Nil(t, analytics.OnlineForecast, "one day is not enough to fit a line")
	assert.Nil(t, analytics.OfflineForecast)
}

func TestLinearRegression(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
	}{
		{"perfect line", []float64{1, 2, 3}, []float64{2, 4, 6}, 2, 0},
		{"flat", []float64{1, 2, 3}, []float64{5, 5, 5}, 0, 5},
		{"offset line", []float64{1, 2}, []float64{10, 30}, 20, -10},
		{"degenerate x", []float64{2, 2}, []float64{1, 3}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept := linearRegression(tt.x, tt.y)
			assert.InDelta(t, tt.wantSlope, slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, intercept, 1e-9)
		})
	}
}

func TestForecast_ClampsAtZero(t *testing.T) {
	// A falling trend never projects below zero.
	got := forecast([]float64{1, 2}, []float64{100, 0}, 3)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got.Predicted)
}
