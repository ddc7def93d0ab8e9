package domain

import "time"

// MealToken is the numbered slip handed to a user after a booking.
// Numbers are contiguous from 1 per (MealName, MenuID). Immutable once issued.
type MealToken struct {
	ID          uint      `json:"id"`
	Token       string    `json:"token"` // "TOKEN-{n}"
	TokenNumber int       `json:"token_number"`
	UserID      uint      `json:"user_id"`
	MealName    string    `json:"meal_name"`
	MenuID      uint      `json:"menu_id"`
	BookedAt    time.Time `json:"booked_at"`
}
