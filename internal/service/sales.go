package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"cafeteria-api/internal/domain"
)

type SalesRepository interface {
	CreateOfflineSale(ctx context.Context, sale domain.OfflineSale) (domain.OfflineSale, error)
	FindAll(ctx context.Context) ([]domain.SalesRecord, error)
	FindBySourceBetween(ctx context.Context, source domain.SaleSource, from, to time.Time) ([]domain.SalesRecord, error)
}

type SalesService struct {
	repo SalesRepository
}

func NewSalesService(repo SalesRepository) *SalesService {
	return &SalesService{
		repo: repo,
	}
}

// RecordOfflineSale appends a counter sale and its ledger mirror.
func (s *SalesService) RecordOfflineSale(ctx context.Context, sale domain.OfflineSale) (domain.OfflineSale, error) {
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}

	created, err := s.repo.CreateOfflineSale(ctx, sale)
	if err != nil {
		return domain.OfflineSale{}, fmt.Errorf("s.repo.CreateOfflineSale -> %w", err)
	}

	return created, nil
}

// TodaysOnlineSales returns today's online ledger entries together with the
// booked quantity per meal.
func (s *SalesService) TodaysOnlineSales(ctx context.Context) ([]domain.SalesRecord, map[string]int, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	records, err := s.repo.FindBySourceBetween(ctx, domain.SaleOnline, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("s.repo.FindBySourceBetween -> %w", err)
	}

	totals := make(map[string]int)
	for _, rec := range records {
		qty := rec.Quantity
		if qty == 0 {
			qty = 1
		}
		totals[rec.MealName] += qty
	}

	return records, totals, nil
}

// Analytics aggregates the whole ledger into per-day totals by source and,
// once two or more days exist, fits a least-squares line per source to
// project the next day.
func (s *SalesService) Analytics(ctx context.Context) (domain.SalesAnalytics, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.SalesAnalytics{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	onlineByDay := make(map[string]float64)
	offlineByDay := make(map[string]float64)
	for _, rec := range records {
		day := rec.SoldAt.Format("2006-01-02")
		switch rec.Source {
		case domain.SaleOnline:
			onlineByDay[day] += rec.Amount
		case domain.SaleOffline:
			offlineByDay[day] += rec.Amount
		}
	}

	daySet := make(map[string]bool)
	for day := range onlineByDay {
		daySet[day] = true
	}
	for day := range offlineByDay {
		daySet[day] = true
	}

	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	analytics := domain.SalesAnalytics{
		Daily: make([]domain.DailySales, len(days)),
	}

	x := make([]float64, len(days))
	online := make([]float64, len(days))
	offline := make([]float64, len(days))
	for i, day := range days {
		x[i] = float64(i + 1)
		online[i] = onlineByDay[day]
		offline[i] = offlineByDay[day]
		analytics.Daily[i] = domain.DailySales{
			Day:     day,
			Online:  online[i],
			Offline: offline[i],
		}
	}

	if len(days) > 1 {
		nextDay := float64(len(days) + 1)
		analytics.OnlineForecast = forecast(x, online, nextDay)
		analytics.OfflineForecast = forecast(x, offline, nextDay)
	}

	return analytics, nil
}

func forecast(x, y []float64, at float64) *domain.SalesForecast {
	slope, intercept := linearRegression(x, y)
	predicted := math.Max(0, math.Round(slope*at+intercept))

	return &domain.SalesForecast{
		Slope:     slope,
		Intercept: intercept,
		Predicted: predicted,
	}
}

func linearRegression(x, y []float64) (slope, intercept float64) {
	n := float64(len(x))

	var xMean, yMean float64
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= n
	yMean /= n

	var num, den float64
	for i := range x {
		num += (x[i] - xMean) * (y[i] - yMean)
		den += (x[i] - xMean) * (x[i] - xMean)
	}
	if den == 0 {
		return 0, yMean
	}

	return num / den, yMean - (num/den)*xMean
}
