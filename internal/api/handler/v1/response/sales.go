package response

import "cafeteria-api/internal/domain"

// TodaysSalesResponse lists today's online orders with the booked quantity
// per meal.
type TodaysSalesResponse struct {
	Orders []domain.SalesRecord `json:"orders"`
	Totals map[string]int       `json:"totals"`
}
