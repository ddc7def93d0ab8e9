package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BookMealRequest struct {
	MenuID   uint   `json:"menu_id"`
	MealName string `json:"meal_name"`
}

func (req *BookMealRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MenuID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.MealName, validation.Required, validation.Length(1, 50)),
	)
}
