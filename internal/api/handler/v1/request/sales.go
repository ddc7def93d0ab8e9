package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type OfflineSaleRequest struct {
	MealName    string   `json:"meal_name"`
	Quantity    int      `json:"quantity"`
	Amount      *float64 `json:"amount"`
	PaymentType string   `json:"payment_type"`
}

func (req *OfflineSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MealName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.Amount, validation.NotNil, validation.Min(0.0)),
		validation.Field(&req.PaymentType, validation.Required, validation.In("Cash", "UPI", "Card")),
	)
}
