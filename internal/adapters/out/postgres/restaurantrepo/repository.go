package restaurantrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/pkg/errs"
)

// GormRestaurantLookup implements ports.RestaurantLookup using GORM.
type GormRestaurantLookup struct {
	db *gorm.DB
}

// NewGormRestaurantLookup creates a new GORM restaurant lookup.
func NewGormRestaurantLookup(db *gorm.DB) *GormRestaurantLookup {
	return &GormRestaurantLookup{db: db}
}

// Get loads a restaurant with its menu filtered to the given products.
// Products the restaurant does not carry are absent from the result, which
// leaves the corresponding order items unreconciled.
func (r *GormRestaurantLookup) Get(
	ctx context.Context,
	id kernel.RestaurantID,
	productIDs []kernel.ProductID,
) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		rawIDs = append(rawIDs, productID.Bytes())
	}

	var productDTOs []ProductDTO
	err = r.db.WithContext(ctx).
		Find(&productDTOs, "restaurant_id = ? AND id IN ?", id.Bytes(), rawIDs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, productDTOs)
}
