package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

func validCommandItems(t *testing.T) []commands.CreateOrderCommandItem {
	t.Helper()
	return []commands.CreateOrderCommandItem{
		{
			ProductID: kernel.NewProductID(),
			Price:     mustMoney(t, "10.00"),
			Quantity:  2,
			SubTotal:  mustMoney(t, "20.00"),
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		customerID := kernel.NewCustomerID()
		restaurantID := kernel.NewRestaurantID()

		cmd, err := commands.NewCreateOrderCommand(
			customerID, restaurantID,
			"Baker Street 221b", "London", "NW1 6XE",
			mustMoney(t, "20.00"), validCommandItems(t),
		)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, customerID.IsEqual(cmd.CustomerID()))
		assert.True(t, restaurantID.IsEqual(cmd.RestaurantID()))
		assert.Equal(t, "Baker Street 221b", cmd.Street())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should return error when customer id is empty", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.CustomerID{}, kernel.NewRestaurantID(),
			"Baker Street 221b", "London", "NW1 6XE",
			mustMoney(t, "20.00"), validCommandItems(t),
		)

		assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})

	t.Run("should return error when address is incomplete", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewCustomerID(), kernel.NewRestaurantID(),
			"", "London", "NW1 6XE",
			mustMoney(t, "20.00"), validCommandItems(t),
		)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when items are empty", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewCustomerID(), kernel.NewRestaurantID(),
			"Baker Street 221b", "London", "NW1 6XE",
			mustMoney(t, "20.00"), nil,
		)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error when command was not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
