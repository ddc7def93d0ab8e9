package domain

import (
	"errors"
	"time"
)

type MenuStatus string

const (
	MenuScheduled MenuStatus = "scheduled"
	MenuActive    MenuStatus = "active"
)

var (
	ErrItemNameRequired     = errors.New("item name is required")
	ErrItemPriceNegative    = errors.New("item price must be zero or positive")
	ErrItemQuantityNegative = errors.New("item quantity must be zero or positive")
	ErrItemNameTaken        = errors.New("an item with this name is already on the draft")
	ErrNoSuchDraftItem      = errors.New("no draft item at this position")
)

type Menu struct {
	ID          uint       `json:"id"`
	Date        time.Time  `json:"date"`
	LaunchTime  time.Time  `json:"launch_time"`
	Status      MenuStatus `json:"status"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	Items       []MenuItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID          uint    `json:"id"`
	MenuID      uint    `json:"menu_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
}

// MenuDraft is the working copy an admin assembles before scheduling.
// It lives for the duration of a request and is never persisted itself;
// scheduling turns it into a Menu in a single create.
type MenuDraft struct {
	Date       time.Time  `json:"date"`
	LaunchTime time.Time  `json:"launch_time"`
	Items      []MenuItem `json:"items"`
}

// ItemForm says whether a submitted item creates a new draft entry or
// replaces an existing one. Both modes run the same validation.
type ItemForm struct {
	editing bool
	index   int
}

func Creating() ItemForm {
	return ItemForm{}
}

func Editing(index int) ItemForm {
	return ItemForm{editing: true, index: index}
}

// Submit validates item and applies it to the draft according to form.
// On error the draft is left untouched.
func (d *MenuDraft) Submit(form ItemForm, item MenuItem) error {
	if item.Name == "" {
		return ErrItemNameRequired
	}
	if item.Price < 0 {
		return ErrItemPriceNegative
	}
	if item.Quantity < 0 {
		return ErrItemQuantityNegative
	}

	if form.editing && (form.index < 0 || form.index >= len(d.Items)) {
		return ErrNoSuchDraftItem
	}

	for i, existing := range d.Items {
		if form.editing && i == form.index {
			continue
		}
		if existing.Name == item.Name {
			return ErrItemNameTaken
		}
	}

	if form.editing {
		d.Items[form.index] = item
	} else {
		d.Items = append(d.Items, item)
	}

	return nil
}

// DraftFrom copies a previous menu's items and date into a fresh draft.
// Status and identifiers are not carried over and the source is not mutated.
func DraftFrom(menu Menu) MenuDraft {
	items := make([]MenuItem, len(menu.Items))
	for i, item := range menu.Items {
		items[i] = MenuItem{
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Quantity:    item.Quantity,
		}
	}

	return MenuDraft{
		Date:  menu.Date,
		Items: items,
	}
}
