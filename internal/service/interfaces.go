package service

import "tableside/internal/domain"

// The collection interfaces are satisfied by storage.Collection; each one is
// an independent durable list with subscriber notification.

type DishCollection interface {
	Items() []domain.Dish
	Replace(items []domain.Dish)
	Mutate(fn func(items []domain.Dish) []domain.Dish)
	Subscribe(fn func(items []domain.Dish))
}

type OrderCollection interface {
	Items() []domain.Order
	Replace(items []domain.Order)
	Mutate(fn func(items []domain.Order) []domain.Order)
	Subscribe(fn func(items []domain.Order))
}

type TableCollection interface {
	Items() []domain.RestaurantTable
	Replace(items []domain.RestaurantTable)
	Mutate(fn func(items []domain.RestaurantTable) []domain.RestaurantTable)
	Subscribe(fn func(items []domain.RestaurantTable))
}

// Cart is what order placement needs from a diner's cart.
type Cart interface {
	Items() []domain.CartItem
	Total() float64
	Clear()
}

type CatalogServiceInterface interface {
	List() []domain.Dish
	Get(dishID string) (*domain.Dish, bool)
	Save(dish domain.Dish) (domain.Dish, error)
	Delete(dishID string)
}

type OrderServiceInterface interface {
	PlaceOrder(c Cart, tableNumber string) (*domain.Order, error)
	UpdateStatus(orderID string, next domain.OrderStatus) error
	List() []domain.Order
}

type TableServiceInterface interface {
	List() []domain.RestaurantTable
	Add(name string) (domain.RestaurantTable, error)
	Delete(tableID string)
	QRCode(tableID string) ([]byte, error)
}

type SessionResolver interface {
	Resolve(tableNumber string) (*domain.Order, bool)
}
