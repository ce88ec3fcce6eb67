package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/service"
)

func TestCatalogSaveValidation(t *testing.T) {
	tests := []struct {
		name string
		dish domain.Dish
	}{
		{name: "missing name", dish: domain.Dish{Category: "早餐", Price: 10}},
		{name: "missing category", dish: domain.Dish{Name: "粥", Price: 10}},
		{name: "zero price", dish: domain.Dish{Name: "粥", Category: "早餐", Price: 0}},
		{name: "negative price", dish: domain.Dish{Name: "粥", Category: "早餐", Price: -5}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			menu := &fakeCollection[domain.Dish]{}
			svc := service.NewCatalogService(menu)

			_, err := svc.Save(testCase.dish)

			assert.ErrorIs(t, err, service.ErrDishInvalid)
			assert.Empty(t, menu.Items(), "rejected dish must not be stored")
		})
	}
}

func TestCatalogSaveCreatesWithFreshID(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{}
	svc := service.NewCatalogService(menu)

	saved, err := svc.Save(domain.Dish{Name: "粥", Category: "早餐", Price: 18})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	require.Len(t, menu.Items(), 1)
	assert.Equal(t, saved.ID, menu.Items()[0].ID)
}

func TestCatalogSaveEditsExistingDish(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{items: []domain.Dish{dishA(), dishB()}}
	svc := service.NewCatalogService(menu)

	edited := dishB()
	edited.Price = 20
	_, err := svc.Save(edited)

	require.NoError(t, err)
	items := menu.Items()
	require.Len(t, items, 2)
	assert.InDelta(t, 20.0, items[1].Price, 0.001)
}

func TestCatalogSaveUnknownIDChangesNothing(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{items: []domain.Dish{dishA()}}
	svc := service.NewCatalogService(menu)

	_, err := svc.Save(domain.Dish{ID: "gone", Name: "粥", Category: "早餐", Price: 18})

	require.NoError(t, err)
	require.Len(t, menu.Items(), 1)
	assert.Equal(t, "dish-a", menu.Items()[0].ID)
}

func TestCatalogSaveNormalizesOptionalFields(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{}
	svc := service.NewCatalogService(menu)

	saved, err := svc.Save(domain.Dish{
		Name:           "粥",
		Category:       "早餐",
		Price:          18,
		OriginalPrice:  -1,
		Specifications: []domain.Specification{},
	})

	require.NoError(t, err)
	assert.Zero(t, saved.OriginalPrice)
	assert.Nil(t, saved.Specifications)
}

func TestCatalogDelete(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{items: []domain.Dish{dishA(), dishB()}}
	svc := service.NewCatalogService(menu)

	svc.Delete("dish-a")

	require.Len(t, menu.Items(), 1)
	assert.Equal(t, "dish-b", menu.Items()[0].ID)

	svc.Delete("dish-missing")
	assert.Len(t, menu.Items(), 1)
}

func TestCatalogGet(t *testing.T) {
	menu := &fakeCollection[domain.Dish]{items: []domain.Dish{dishA()}}
	svc := service.NewCatalogService(menu)

	dish, found := svc.Get("dish-a")
	require.True(t, found)
	assert.Equal(t, "香脆鸡腿堡", dish.Name)

	_, found = svc.Get("dish-missing")
	assert.False(t, found)
}

func TestDefaultMenuSeedsCatalog(t *testing.T) {
	seed := domain.DefaultMenu()

	require.Len(t, seed, 8)
	for _, dish := range seed {
		assert.NotEmpty(t, dish.ID)
		assert.NotEmpty(t, dish.Name)
		assert.NotEmpty(t, dish.Category)
		assert.Greater(t, dish.Price, 0.0)
	}
}
