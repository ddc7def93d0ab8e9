package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// MenuItemRequest uses pointers for price and quantity so "missing" and
// "zero" stay distinguishable; both must be present and non-negative.
type MenuItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
}

func (req *MenuItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Price, validation.NotNil, validation.Min(0.0)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
	)
}

type ScheduleMenuRequest struct {
	Date       string            `json:"date" format:"YYYY-MM-DD"`
	LaunchTime string            `json:"launch_time" format:"HH:MM"`
	Items      []MenuItemRequest `json:"items"`
}

func (req *ScheduleMenuRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.LaunchTime, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Items, validation.Required),
	)
	if err != nil {
		return err
	}

	for _, item := range req.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
