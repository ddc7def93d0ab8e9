package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SalesRecord struct {
	ID          uint    `gorm:"primaryKey"`
	MealName    string  `gorm:"not null"`
	MenuID      *uint   `gorm:"index"`
	UserID      *uint   `gorm:"index"`
	Amount      float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	Source      string  `gorm:"not null;index"`
	PaymentType string
	SoldAt      time.Time `gorm:"not null;index"`
}

func (SalesRecord) TableName() string {
	return "sales"
}

type OfflineSale struct {
	ID          uint      `gorm:"primaryKey"`
	MealName    string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Amount      float64   `gorm:"not null"`
	PaymentType string    `gorm:"not null"`
	SoldAt      time.Time `gorm:"not null"`
}

func (OfflineSale) TableName() string {
	return "offline_sales"
}

type SalesDAO struct {
	db *gorm.DB
}

func NewSalesDAO(db *gorm.DB) *SalesDAO {
	return &SalesDAO{
		db: db,
	}
}

// InsertOfflineSale appends the offline entry and its ledger mirror together;
// either both rows exist afterwards or neither does.
func (d *SalesDAO) InsertOfflineSale(ctx context.Context, sale OfflineSale) (OfflineSale, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		record := SalesRecord{
			MealName:    sale.MealName,
			Amount:      sale.Amount,
			Quantity:    sale.Quantity,
			Source:      "offline",
			PaymentType: sale.PaymentType,
			SoldAt:      sale.SoldAt,
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		return OfflineSale{}, err
	}

	return sale, nil
}

func (d *SalesDAO) FindAll(ctx context.Context) ([]SalesRecord, error) {
	var records []SalesRecord

	result := d.db.WithContext(ctx).Order("sold_at ASC").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *SalesDAO) FindBySourceBetween(ctx context.Context, source string, from, to time.Time) ([]SalesRecord, error) {
	var records []SalesRecord

	result := d.db.WithContext(ctx).
		Where("source = ? AND sold_at >= ? AND sold_at < ?", source, from, to).
		Order("sold_at ASC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
