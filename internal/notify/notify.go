// Package notify publishes storefront events to external integrations.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
)

// Event is a payload destined for an external integration.
type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// Publisher delivers events. Delivery is fire-and-forget from the caller's
// point of view: a failed publish never rolls back the state change that
// produced the event.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// OrderPlacedEvent is emitted after an order has been recorded.
// It carries frozen order data only, never live references.
type OrderPlacedEvent struct {
	OrderID      string            `json:"order_id"`
	CustomerName string            `json:"customer_name"`
	City         string            `json:"city"`
	Phone        string            `json:"phone"`
	Items        []store.OrderItem `json:"items"`
	Total        int64             `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewOrderPlacedEvent builds the event for a freshly created order.
func NewOrderPlacedEvent(ord store.Order) OrderPlacedEvent {
	return OrderPlacedEvent{
		OrderID:      ord.ID,
		CustomerName: ord.CustomerName,
		City:         ord.City,
		Phone:        ord.Phone,
		Items:        ord.Items,
		Total:        ord.Total,
		CreatedAt:    ord.CreatedAt,
	}
}

func (e OrderPlacedEvent) Subject() string {
	return "orders.placed"
}

func (e OrderPlacedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
