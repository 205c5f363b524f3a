package domain

import "context"

// PaymentForm is the auto-submitting form the browser posts to the gateway.
// swagger:model PaymentForm
type PaymentForm struct {
	URL    string            `json:"url"`
	Params map[string]string `json:"params"`
}

// PaymentInit is returned when a checkout starts.
// swagger:model PaymentInit
type PaymentInit struct {
	OrderID     string       `json:"order_id"`
	AmountCents int64        `json:"amount_cents"`
	Form        *PaymentForm `json:"form"`
}

// GatewayNotification is a verified webhook payload.
type GatewayNotification struct {
	OrderID string
	// ResponseCode is the gateway's Ds_Response; nil when the payload carried none.
	ResponseCode *int
}

// Authorized reports whether the gateway approved the payment (codes 0-99).
func (n *GatewayNotification) Authorized() bool {
	return n.ResponseCode == nil || (*n.ResponseCode >= 0 && *n.ResponseCode < 100)
}

// PaymentGateway signs checkout forms and verifies notifications.
type PaymentGateway interface {
	BuildForm(order *Order) (*PaymentForm, error)
	VerifyNotification(merchantParams, signature string) (*GatewayNotification, error)
}

// OrderIDGenerator produces order identifiers accepted by the gateway.
type OrderIDGenerator interface {
	NewOrderID() (string, error)
}

// PaymentService drives checkout, webhook settlement and the debug bypass.
type PaymentService interface {
	Initiate(ctx context.Context, cart Cart) (*PaymentInit, error)
	HandleNotification(ctx context.Context, merchantParams, signature string) error
	Bypass(ctx context.Context, cart Cart) (*Ticket, error)
}
