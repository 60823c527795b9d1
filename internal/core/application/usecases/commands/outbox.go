package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// eventPayload is the wire representation of an order domain event. Other
// saga participants consume it from the broker.
type eventPayload struct {
	OrderID         string             `json:"order_id"`
	CustomerID      string             `json:"customer_id"`
	RestaurantID    string             `json:"restaurant_id"`
	TrackingID      string             `json:"tracking_id"`
	Price           string             `json:"price"`
	Status          string             `json:"status"`
	Items           []eventPayloadItem `json:"items"`
	FailureMessages []string           `json:"failure_messages,omitempty"`
	OccurredAt      time.Time          `json:"occurred_at"`
}

type eventPayloadItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	SubTotal  string `json:"sub_total"`
}

// newOutboxMessage serializes a domain event into an outbox message keyed by
// order identifier, so all events of one order land on one partition.
func newOutboxMessage(ev order.Event) (*ports.OutboxMessage, error) {
	o := ev.Order()

	items := make([]eventPayloadItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, eventPayloadItem{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price().String(),
			SubTotal:  item.SubTotal().String(),
		})
	}

	payload, err := json.Marshal(eventPayload{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID().String(),
		TrackingID:      o.TrackingID().String(),
		Price:           o.Price().String(),
		Status:          o.Status().String(),
		Items:           items,
		FailureMessages: o.FailureMessages(),
		OccurredAt:      ev.OccurredAt(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", ev.Type(), err)
	}

	return &ports.OutboxMessage{
		EventID:   uuid.NewString(),
		EventType: string(ev.Type()),
		Key:       o.ID().String(),
		Payload:   payload,
		CreatedAt: ev.OccurredAt(),
	}, nil
}
