package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/cart"
	"tableside/internal/domain"
)

func TestCartMergesSameDishAndSpecification(t *testing.T) {
	c := cart.NewStore()
	spec := &domain.Specification{Name: "套餐", Price: 42}

	c.AddItem(dishA(), spec, 2)
	c.AddItem(dishA(), spec, 3)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.ItemCount())
}

func TestCartKeepsDifferentSpecificationsApart(t *testing.T) {
	c := cart.NewStore()

	c.AddItem(dishA(), &domain.Specification{Name: "单点", Price: 28}, 1)
	c.AddItem(dishA(), &domain.Specification{Name: "套餐", Price: 42}, 1)
	c.AddItem(dishA(), nil, 1)

	items := c.Items()
	require.Len(t, items, 3)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestCartIgnoresNonPositiveAdds(t *testing.T) {
	c := cart.NewStore()

	c.AddItem(dishA(), nil, 0)
	c.AddItem(dishA(), nil, -2)

	assert.Empty(t, c.Items())
	assert.Zero(t, c.ItemCount())
}

func TestCartQuantityFloorRemovesLine(t *testing.T) {
	tests := []struct {
		name        string
		newQuantity int
	}{
		{name: "zero removes", newQuantity: 0},
		{name: "negative removes", newQuantity: -5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.NewStore()
			c.AddItem(dishA(), nil, 2)
			lineID := c.Items()[0].ID

			c.UpdateQuantity(lineID, testCase.newQuantity)

			assert.Empty(t, c.Items())
		})
	}
}

func TestCartUpdateQuantitySetsExactly(t *testing.T) {
	c := cart.NewStore()
	c.AddItem(dishA(), nil, 2)
	lineID := c.Items()[0].ID

	c.UpdateQuantity(lineID, 7)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)

	// Unknown line ids change nothing.
	c.UpdateQuantity("missing", 1)
	assert.Equal(t, 7, c.Items()[0].Quantity)
}

func TestCartRemovedLineCanBeReAdded(t *testing.T) {
	c := cart.NewStore()
	c.AddItem(dishA(), nil, 1)
	c.AddItem(dishB(), nil, 1)
	first := c.Items()[0].ID

	c.UpdateQuantity(first, 0)
	c.AddItem(dishA(), nil, 2)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "dish-b", items[0].Dish.ID)
	assert.Equal(t, "dish-a", items[1].Dish.ID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestCartTotal(t *testing.T) {
	c := cart.NewStore()
	c.AddItem(dishA(), nil, 2)                                          // 28 x 2
	c.AddItem(dishA(), &domain.Specification{Name: "套餐", Price: 42}, 1) // 42 x 1

	assert.InDelta(t, 98.0, c.Total(), 0.001)
	assert.Equal(t, 3, c.ItemCount())
}

func TestCartClear(t *testing.T) {
	c := cart.NewStore()
	c.AddItem(dishA(), nil, 2)

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
}

func TestRegistrySharesCartPerTable(t *testing.T) {
	reg := cart.NewRegistry()

	reg.Get("A01").AddItem(dishA(), nil, 1)

	assert.Equal(t, 1, reg.Get("A01").ItemCount())
	assert.Zero(t, reg.Get("B02").ItemCount())
}
