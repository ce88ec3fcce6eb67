package service

import (
	"github.com/google/uuid"

	"tableside/internal/domain"
)

// CatalogService carries the menu editing the admin panel performs.
type CatalogService struct {
	menu DishCollection
}

func NewCatalogService(menu DishCollection) *CatalogService {
	return &CatalogService{menu: menu}
}

func (s *CatalogService) List() []domain.Dish {
	return s.menu.Items()
}

func (s *CatalogService) Get(dishID string) (*domain.Dish, bool) {
	for _, dish := range s.menu.Items() {
		if dish.ID == dishID {
			return &dish, true
		}
	}
	return nil, false
}

// Save creates the dish when it carries no id, otherwise replaces the stored
// dish with the same id. Editing an id that no longer exists changes nothing.
func (s *CatalogService) Save(dish domain.Dish) (domain.Dish, error) {
	if dish.Name == "" || dish.Category == "" || dish.Price <= 0 {
		return domain.Dish{}, ErrDishInvalid
	}
	if dish.OriginalPrice < 0 {
		dish.OriginalPrice = 0
	}
	if len(dish.Specifications) == 0 {
		dish.Specifications = nil
	}

	if dish.ID == "" {
		dish.ID = uuid.NewString()
		s.menu.Mutate(func(menu []domain.Dish) []domain.Dish {
			return append(menu, dish)
		})
		return dish, nil
	}

	s.menu.Mutate(func(menu []domain.Dish) []domain.Dish {
		for i := range menu {
			if menu[i].ID == dish.ID {
				menu[i] = dish
			}
		}
		return menu
	})
	return dish, nil
}

func (s *CatalogService) Delete(dishID string) {
	s.menu.Mutate(func(menu []domain.Dish) []domain.Dish {
		kept := menu[:0]
		for _, dish := range menu {
			if dish.ID != dishID {
				kept = append(kept, dish)
			}
		}
		return kept
	})
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
