package tests

import (
	"tableside/internal/domain"
)

// fakeCollection is an in-memory stand-in for storage.Collection, so the
// service tests run without a database file.
type fakeCollection[T any] struct {
	items []T
	subs  []func([]T)
}

func (c *fakeCollection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *fakeCollection[T]) Replace(items []T) {
	c.items = items
	c.notify()
}

func (c *fakeCollection[T]) Mutate(fn func(items []T) []T) {
	c.items = fn(c.items)
	c.notify()
}

func (c *fakeCollection[T]) Subscribe(fn func(items []T)) {
	c.subs = append(c.subs, fn)
	fn(c.Items())
}

func (c *fakeCollection[T]) notify() {
	for _, fn := range c.subs {
		fn(c.Items())
	}
}

func dishA() domain.Dish {
	return domain.Dish{
		ID:       "dish-a",
		Name:     "香脆鸡腿堡",
		Price:    28,
		Category: "人气热卖",
		Specifications: []domain.Specification{
			{Name: "单点", Price: 28},
			{Name: "套餐", Price: 42},
		},
	}
}

func dishB() domain.Dish {
	return domain.Dish{
		ID:       "dish-b",
		Name:     "皮蛋瘦肉粥",
		Price:    18,
		Category: "中式早餐",
	}
}
