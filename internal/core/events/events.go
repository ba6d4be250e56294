// Package events defines the transient broadcast payloads pushed to
// connected viewers when an order changes. Events are never persisted and
// never replayed: a viewer that connects after an event fires has missed it.
//
// The wire format (field names and shapes) is part of the viewer contract:
// new_order carries the full order document, while status updates and
// cancellations carry only identifiers and the enumerated status.
package events

import (
	"time"

	"tableservice/internal/core/domain/model/order"
)

// Kind tags a broadcast event.
type Kind string

const (
	// KindNewOrder announces a freshly created order with its full payload.
	KindNewOrder Kind = "new_order"

	// KindOrderStatusUpdate announces a status change by identifiers only.
	KindOrderStatusUpdate Kind = "order_status_update"

	// KindOrderCancelled announces a cancellation by identifiers only.
	KindOrderCancelled Kind = "order_cancelled"
)

// ItemPayload is the wire form of one order line.
type ItemPayload struct {
	MenuItemID   string  `json:"menu_item_id"`
	MenuItemName string  `json:"menu_item_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Note         string  `json:"special_requests,omitempty"`
}

// OrderPayload is the wire form of a full order, carried by new_order events.
type OrderPayload struct {
	ID          string        `json:"id"`
	TableNumber int           `json:"table_number"`
	Items       []ItemPayload `json:"items"`
	Status      string        `json:"status"`
	Total       float64       `json:"total_amount"`
	WaiterName  string        `json:"waiter_name"`
	Note        string        `json:"special_requests,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Event is the tagged record delivered to every connected viewer.
// Exactly one of the payload field groups is populated depending on Kind.
type Event struct {
	Kind        Kind          `json:"type"`
	Order       *OrderPayload `json:"order,omitempty"`
	OrderID     string        `json:"order_id,omitempty"`
	Status      string        `json:"status,omitempty"`
	TableNumber int           `json:"table_number,omitempty"`
	Timestamp   time.Time     `json:"timestamp"`
}

// NewOrderPayload converts an order aggregate into its wire form.
func NewOrderPayload(o *order.Order) OrderPayload {
	items := make([]ItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemPayload{
			MenuItemID:   item.MenuItemID().String(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Price:        item.Price(),
			Note:         item.Note(),
		})
	}

	return OrderPayload{
		ID:          o.ID().String(),
		TableNumber: o.TableNumber(),
		Items:       items,
		Status:      o.Status().String(),
		Total:       o.Total(),
		WaiterName:  o.WaiterName(),
		Note:        o.Note(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// NewOrderCreated builds the new_order event for a just-created order.
func NewOrderCreated(o *order.Order) Event {
	payload := NewOrderPayload(o)
	return Event{
		Kind:      KindNewOrder,
		Order:     &payload,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderStatusUpdated builds the order_status_update event. The payload is
// deliberately identifiers plus the status string, not the full order.
func NewOrderStatusUpdated(o *order.Order) Event {
	return Event{
		Kind:        KindOrderStatusUpdate,
		OrderID:     o.ID().String(),
		Status:      o.Status().String(),
		TableNumber: o.TableNumber(),
		Timestamp:   time.Now().UTC(),
	}
}

// NewOrderCancelled builds the order_cancelled event.
func NewOrderCancelled(o *order.Order) Event {
	return Event{
		Kind:        KindOrderCancelled,
		OrderID:     o.ID().String(),
		TableNumber: o.TableNumber(),
		Timestamp:   time.Now().UTC(),
	}
}
