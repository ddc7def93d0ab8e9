package repository

import (
	"context"
	"fmt"
	"time"

	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/repository/dao"
)

type SalesDAO interface {
	InsertOfflineSale(ctx context.Context, sale dao.OfflineSale) (dao.OfflineSale, error)
	FindAll(ctx context.Context) ([]dao.SalesRecord, error)
	FindBySourceBetween(ctx context.Context, source string, from, to time.Time) ([]dao.SalesRecord, error)
}

type SalesRepository struct {
	dao SalesDAO
}

func NewSalesRepository(dao SalesDAO) *SalesRepository {
	return &SalesRepository{
		dao: dao,
	}
}

func (r *SalesRepository) recordDaoToDomain(s dao.SalesRecord) domain.SalesRecord {
	return domain.SalesRecord{
		ID:          s.ID,
		MealName:    s.MealName,
		MenuID:      s.MenuID,
		UserID:      s.UserID,
		Amount:      s.Amount,
		Quantity:    s.Quantity,
		Source:      domain.SaleSource(s.Source),
		PaymentType: s.PaymentType,
		SoldAt:      s.SoldAt,
	}
}

func (r *SalesRepository) offlineDaoToDomain(s dao.OfflineSale) domain.OfflineSale {
	return domain.OfflineSale{
		ID:          s.ID,
		MealName:    s.MealName,
		Quantity:    s.Quantity,
		Amount:      s.Amount,
		PaymentType: s.PaymentType,
		SoldAt:      s.SoldAt,
	}
}

func (r *SalesRepository) CreateOfflineSale(ctx context.Context, sale domain.OfflineSale) (domain.OfflineSale, error) {
	created, err := r.dao.InsertOfflineSale(ctx, dao.OfflineSale{
		MealName:    sale.MealName,
		Quantity:    sale.Quantity,
		Amount:      sale.Amount,
		PaymentType: sale.PaymentType,
		SoldAt:      sale.SoldAt,
	})
	if err != nil {
		return domain.OfflineSale{}, fmt.Errorf("r.dao.InsertOfflineSale -> %w", err)
	}

	return r.offlineDaoToDomain(created), nil
}

func (r *SalesRepository) FindAll(ctx context.Context) ([]domain.SalesRecord, error) {
	records, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.SalesRecord, len(records))
	for i, rec := range records {
		out[i] = r.recordDaoToDomain(rec)
	}

	return out, nil
}

func (r *SalesRepository) FindBySourceBetween(ctx context.Context, source domain.SaleSource, from, to time.Time) ([]domain.SalesRecord, error) {
	records, err := r.dao.FindBySourceBetween(ctx, string(source), from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySourceBetween -> %w", err)
	}

	out := make([]domain.SalesRecord, len(records))
	for i, rec := range records {
		out[i] = r.recordDaoToDomain(rec)
	}

	return out, nil
}
