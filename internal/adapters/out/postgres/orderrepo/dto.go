// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The tracking identifier carries a unique index because the
// tracking query looks orders up by it.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;index"`
	TrackingID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Street          string
	City            string
	ZipCode         string
	Price           decimal.Decimal `gorm:"type:numeric"`
	Status          int             `gorm:"index"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The primary key is composite: the
// owning order plus the 1-based item position within it.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      int       `gorm:"primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ProductName string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
	SubTotal    decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ItemID:      int(item.ID()),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Price:       item.Price().Amount(),
			Quantity:    item.Quantity(),
			SubTotal:    item.SubTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		TrackingID:      aggregate.TrackingID().Bytes(),
		Street:          aggregate.DeliveryAddress().Street(),
		City:            aggregate.DeliveryAddress().City(),
		ZipCode:         aggregate.DeliveryAddress().ZipCode(),
		Price:           aggregate.Price().Amount(),
		Status:          int(aggregate.Status()),
		FailureMessages: aggregate.FailureMessages(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// the complete state including items and failure messages via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.CustomerIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.RestaurantIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	trackingID, err := kernel.TrackingIDFromBytes(dto.TrackingID[:])
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.City, dto.ZipCode)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		TrackingID:      trackingID,
		DeliveryAddress: address,
		Price:           price,
		Items:           items,
		Status:          order.Status(dto.Status),
		FailureMessages: dto.FailureMessages,
	})
}

func itemToDomain(orderID kernel.OrderID, dto OrderItemDTO) (*order.Item, error) {
	productID, err := kernel.ProductIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	subTotal, err := kernel.NewMoney(dto.SubTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		order.ItemID(dto.ItemID),
		orderID,
		productID,
		dto.ProductName,
		price,
		dto.Quantity,
		subTotal,
	)
}
