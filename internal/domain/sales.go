package domain

import "time"

type SaleSource string

const (
	SaleOnline  SaleSource = "online"
	SaleOffline SaleSource = "offline"
)

// SalesRecord is one row of the append-only sales ledger. Online records
// carry the booking user and menu; offline records carry the payment type.
type SalesRecord struct {
	ID          uint       `json:"id"`
	MealName    string     `json:"meal_name"`
	MenuID      *uint      `json:"menu_id,omitempty"`
	UserID      *uint      `json:"user_id,omitempty"`
	Amount      float64    `json:"amount"`
	Quantity    int        `json:"quantity"`
	Source      SaleSource `json:"source"`
	PaymentType string     `json:"payment_type,omitempty"`
	SoldAt      time.Time  `json:"sold_at"`
}

// OfflineSale is a counter sale recorded by an admin. Each one is mirrored
// into the sales ledger with Source = offline.
type OfflineSale struct {
	ID          uint      `json:"id"`
	MealName    string    `json:"meal_name"`
	Quantity    int       `json:"quantity"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"`
	SoldAt      time.Time `json:"sold_at"`
}

// DailySales holds one day's ledger totals split by source.
type DailySales struct {
	Day     string  `json:"day"` // "2006-01-02"
	Online  float64 `json:"online"`
	Offline float64 `json:"offline"`
}

// SalesForecast is a least-squares fit over the daily totals of one source
// and its projection for the next day.
type SalesForecast struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Predicted float64 `json:"predicted"`
}

// SalesAnalytics bundles the per-day totals with the next-day forecasts.
// Forecasts are nil until at least two days of data exist.
type SalesAnalytics struct {
	Daily           []DailySales   `json:"daily"`
	OnlineForecast  *SalesForecast `json:"online_forecast,omitempty"`
	OfflineForecast *SalesForecast `json:"offline_forecast,omitempty"`
}
