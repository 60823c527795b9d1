// Package customerrepo reads the customers read-model table replicated from
// the customer service. The order service only checks existence.
package customerrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// CustomerDTO represents a row of the customers read-model table.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string
	FirstName string
	LastName  string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// GormCustomerLookup implements ports.CustomerLookup using GORM.
type GormCustomerLookup struct {
	db *gorm.DB
}

// NewGormCustomerLookup creates a new GORM customer lookup.
func NewGormCustomerLookup(db *gorm.DB) *GormCustomerLookup {
	return &GormCustomerLookup{db: db}
}

// Exists returns nil when the customer is known and an
// *errs.ObjectNotFoundError when it is not.
func (r *GormCustomerLookup) Exists(ctx context.Context, id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("customer", id.String())
		}
		return err
	}

	return nil
}
