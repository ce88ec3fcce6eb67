package domain

import "time"

// Specification is a named price variant of a dish (portion size, combo option).
type Specification struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Dish struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Subtitle       string          `json:"subtitle,omitempty"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	OriginalPrice  float64         `json:"original_price,omitempty"`
	Image          string          `json:"image"`
	Category       string          `json:"category"`
	Specifications []Specification `json:"specifications,omitempty"`
}

// CartItem is one line in a working cart. Dish is an embedded snapshot so a
// later catalog edit never changes what was added to the cart.
type CartItem struct {
	ID                    string         `json:"id"`
	Dish                  Dish           `json:"dish"`
	Quantity              int            `json:"quantity"`
	SelectedSpecification *Specification `json:"selected_specification,omitempty"`
}

// UnitPrice is the selected specification's price when one is chosen,
// otherwise the dish's base price.
func (c CartItem) UnitPrice() float64 {
	if c.SelectedSpecification != nil {
		return c.SelectedSpecification.Price
	}
	return c.Dish.Price
}

// Order is created once at placement; only Status changes afterwards.
type Order struct {
	ID          string      `json:"id"`
	Items       []CartItem  `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
	TableNumber string      `json:"table_number"`
}

type RestaurantTable struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
