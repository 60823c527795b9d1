package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return money
}

func Test_NewProduct(t *testing.T) {
	t.Run("should create product", func(t *testing.T) {
		id := kernel.NewProductID()

		product, err := restaurant.NewProduct(id, "Pizza Margherita", mustMoney(t, "10.00"), true)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(product.ID()))
		assert.Equal(t, "Pizza Margherita", product.Name())
		assert.True(t, mustMoney(t, "10.00").IsEqual(product.Price()))
		assert.True(t, product.IsAvailable())
	})

	t.Run("should return error when name is empty", func(t *testing.T) {
		_, err := restaurant.NewProduct(kernel.NewProductID(), "", mustMoney(t, "10.00"), true)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when id is empty", func(t *testing.T) {
		_, err := restaurant.NewProduct(kernel.ProductID{}, "Pizza Margherita", mustMoney(t, "10.00"), true)
		assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})

	t.Run("should return error when product was not created by constructor", func(t *testing.T) {
		var product restaurant.Product
		assert.ErrorIs(t, product.Validate(), restaurant.ErrProductIsNotConstructed)
	})
}

func Test_NewRestaurant(t *testing.T) {
	t.Run("should create restaurant with products", func(t *testing.T) {
		id := kernel.NewRestaurantID()
		product, err := restaurant.NewProduct(kernel.NewProductID(), "Pizza Margherita", mustMoney(t, "10.00"), true)
		require.NoError(t, err)

		r, err := restaurant.NewRestaurant(id, []*restaurant.Product{product}, true)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(r.ID()))
		assert.Len(t, r.Products(), 1)
		assert.True(t, r.IsActive())
	})

	t.Run("should allow empty product list", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(kernel.NewRestaurantID(), nil, false)

		require.NoError(t, err)
		assert.Empty(t, r.Products())
		assert.False(t, r.IsActive())
	})

	t.Run("should return error when id is empty", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.RestaurantID{}, nil, true)
		assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})

	t.Run("should return error when restaurant was not created by constructor", func(t *testing.T) {
		var r restaurant.Restaurant
		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}
