package domain

import (
	"fmt"
	"strings"
)

// Price table in euro cents.
const (
	PriceGraduateCents   int64 = 8500 // dinner + bar
	PriceGuestFullCents  int64 = 8500 // dinner + bar
	PriceGuestPartyCents int64 = 5000 // bar only
	PriceBusAddonCents   int64 = 700

	// DinnerThresholdCents is the minimum base price that includes dinner.
	DinnerThresholdCents int64 = 8500
)

// Cart is what a buyer pays for: one ticket plus optional bus.
// swagger:model Cart
type Cart struct {
	Type           TicketType `json:"type"`
	GraduateID     string     `json:"graduate_id"`
	GuestName      string     `json:"guest_name,omitempty"`
	GuestEmail     string     `json:"guest_email,omitempty"`
	BasePriceCents int64      `json:"base_price_cents"`
	Bus            bool       `json:"bus"`
}

// Normalize trims free-text fields and uppercases the ticket type.
func (c *Cart) Normalize() {
	c.Type = TicketType(strings.ToUpper(strings.TrimSpace(string(c.Type))))
	c.GraduateID = strings.TrimSpace(c.GraduateID)
	c.GuestName = strings.TrimSpace(c.GuestName)
	c.GuestEmail = strings.ToLower(strings.TrimSpace(c.GuestEmail))
}

// Validate checks the cart against the price table. It returns an error wrapping ErrInvalidInput.
func (c Cart) Validate() error {
	if c.GraduateID == "" {
		return fmt.Errorf("%w: graduate_id is required", ErrInvalidInput)
	}
	switch c.Type {
	case TicketGraduate:
		if c.BasePriceCents != PriceGraduateCents {
			return fmt.Errorf("%w: graduate base price must be %d", ErrInvalidInput, PriceGraduateCents)
		}
	case TicketGuest:
		if c.GuestName == "" {
			return fmt.Errorf("%w: guest_name is required", ErrInvalidInput)
		}
		if c.BasePriceCents != PriceGuestFullCents && c.BasePriceCents != PriceGuestPartyCents {
			return fmt.Errorf("%w: guest base price must be %d or %d", ErrInvalidInput, PriceGuestFullCents, PriceGuestPartyCents)
		}
	default:
		return fmt.Errorf("%w: type must be GRADUATE or GUEST", ErrInvalidInput)
	}
	return nil
}

// TotalCents is base price plus bus add-on plus the management fee.
func (c Cart) TotalCents(managementFeeCents int64) int64 {
	total := c.BasePriceCents + managementFeeCents
	if c.Bus {
		total += PriceBusAddonCents
	}
	return total
}

// IncludesDinner reports whether the base price buys the dinner entitlement.
func (c Cart) IncludesDinner() bool {
	return c.BasePriceCents >= DinnerThresholdCents
}
