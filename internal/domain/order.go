package domain

import (
	"context"
	"time"
)

// OrderStatus is the lifecycle state of a payment order.
type OrderStatus string

const (
	OrderPending OrderStatus = "PENDING"
	OrderPaid    OrderStatus = "PAID"
	OrderFailed  OrderStatus = "FAILED"
)

// Order is one payment attempt for a cart.
// swagger:model Order
type Order struct {
	OrderID     string      `json:"order_id"`
	AmountCents int64       `json:"amount_cents"`
	Status      OrderStatus `json:"status"`
	Cart        Cart        `json:"cart"`
	CreatedAt   time.Time   `json:"created_at"`
	PaidAt      *time.Time  `json:"paid_at,omitempty"`
}

// NewOrder returns a PENDING order for the given cart.
func NewOrder(orderID string, amountCents int64, cart Cart, createdAt time.Time) *Order {
	return &Order{
		OrderID:     orderID,
		AmountCents: amountCents,
		Status:      OrderPending,
		Cart:        cart,
		CreatedAt:   createdAt,
	}
}

// OrderRepository defines storage operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	// MarkFailed moves a PENDING order to FAILED. Orders in other states are left untouched.
	MarkFailed(ctx context.Context, orderID string) error
}
