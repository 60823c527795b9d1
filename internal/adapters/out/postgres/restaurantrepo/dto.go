// Package restaurantrepo reads the restaurant read-model tables that the
// order service validates orders against. The tables are replicated from
// the restaurant service and are read-only here.
package restaurantrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents a row of the restaurants read-model table.
type RestaurantDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Active bool
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO represents a row of the restaurant products read-model table.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        decimal.Decimal `gorm:"type:numeric"`
	Available    bool
}

// TableName specifies the database table name for restaurant products.
func (ProductDTO) TableName() string {
	return "restaurant_products"
}

func toDomain(dto RestaurantDTO, productDTOs []ProductDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.RestaurantIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(productDTOs))
	for _, productDTO := range productDTOs {
		productID, productErr := kernel.ProductIDFromBytes(productDTO.ID[:])
		if productErr != nil {
			return nil, productErr
		}

		price, priceErr := kernel.NewMoney(productDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		product, productErr := restaurant.NewProduct(productID, productDTO.Name, price, productDTO.Available)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return restaurant.NewRestaurant(id, products, dto.Active)
}
