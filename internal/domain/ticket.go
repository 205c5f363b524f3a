package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// TicketType distinguishes graduates from their guests.
type TicketType string

const (
	TicketGraduate TicketType = "GRADUATE"
	TicketGuest    TicketType = "GUEST"
)

// LatestTicketsLimit bounds the admin ticket listing.
const LatestTicketsLimit = 300

// Ticket is a QR-coded admission. Entitlements are fixed at issue time; usage flags only go false to true.
// swagger:model Ticket
type Ticket struct {
	UUID            string     `json:"uuid"`
	OrderID         string     `json:"order_id"`
	Type            TicketType `json:"type"`
	InviterID       string     `json:"inviter_id"`
	HolderName      string     `json:"holder_name"`
	HasDinner       bool       `json:"has_dinner"`
	HasBar          bool       `json:"has_bar"`
	HasBus          bool       `json:"has_bus"`
	UsedDinner      bool       `json:"used_dinner"`
	UsedBar         bool       `json:"used_bar"`
	UsedBusOutbound bool       `json:"used_bus_outbound"`
	UsedBusReturn   bool       `json:"used_bus_return"`
	CreatedAt       time.Time  `json:"created_at"`
}

// NewTicketForCart builds an unused ticket whose entitlements follow the cart.
func NewTicketForCart(uuid, orderID, holderName string, cart Cart, createdAt time.Time) *Ticket {
	return &Ticket{
		UUID:       strings.ToLower(uuid),
		OrderID:    orderID,
		Type:       cart.Type,
		InviterID:  cart.GraduateID,
		HolderName: holderName,
		HasDinner:  cart.IncludesDinner(),
		HasBar:     true,
		HasBus:     cart.Bus,
		CreatedAt:  createdAt,
	}
}

// Entitled reports whether the ticket includes the perk redeemed at cp.
func (t *Ticket) Entitled(cp Checkpoint) bool {
	switch cp {
	case CheckpointDinner:
		return t.HasDinner
	case CheckpointBar:
		return t.HasBar
	case CheckpointBusOutbound, CheckpointBusReturn:
		return t.HasBus
	}
	return false
}

// Used reports whether cp has already been redeemed.
func (t *Ticket) Used(cp Checkpoint) bool {
	switch cp {
	case CheckpointDinner:
		return t.UsedDinner
	case CheckpointBar:
		return t.UsedBar
	case CheckpointBusOutbound:
		return t.UsedBusOutbound
	case CheckpointBusReturn:
		return t.UsedBusReturn
	}
	return false
}

// MarkUsed sets the usage flag for cp on the in-memory copy.
func (t *Ticket) MarkUsed(cp Checkpoint) {
	switch cp {
	case CheckpointDinner:
		t.UsedDinner = true
	case CheckpointBar:
		t.UsedBar = true
	case CheckpointBusOutbound:
		t.UsedBusOutbound = true
	case CheckpointBusReturn:
		t.UsedBusReturn = true
	}
}

type qrPayload struct {
	UUID string `json:"uuid"`
}

// QRPayload returns the JSON text encoded in a ticket's QR code.
func QRPayload(uuid string) string {
	b, _ := json.Marshal(qrPayload{UUID: uuid})
	return string(b)
}

// ParseTicketIdentifier accepts either a bare UUID or a scanned QR payload and returns the lowercase UUID.
func ParseTicketIdentifier(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "{") {
		var p qrPayload
		if err := json.Unmarshal([]byte(raw), &p); err == nil && p.UUID != "" {
			raw = strings.TrimSpace(p.UUID)
		}
	}
	return strings.ToLower(raw)
}

// Issuance is a prepared ticket waiting to be persisted together with its order settlement.
type Issuance struct {
	OrderID string
	Ticket  *Ticket
	// InvitationCode is assigned to the inviter when the ticket is of type GRADUATE.
	InvitationCode string
}

// TicketRepository defines storage operations for tickets.
type TicketRepository interface {
	// Issue atomically marks the order PAID, settles the graduate (GRADUATE tickets) or enforces
	// the guest cap (GUEST tickets), and inserts the ticket.
	Issue(ctx context.Context, iss *Issuance) error
	GetByUUID(ctx context.Context, uuid string) (*Ticket, error)
	GetByOrderID(ctx context.Context, orderID string) (*Ticket, error)
	GetGraduateTicket(ctx context.Context, graduateID string) (*Ticket, error)
	CountGuests(ctx context.Context, inviterID string) (int, error)
	ListGuestNames(ctx context.Context, inviterID string) ([]string, error)
	ListLatest(ctx context.Context, limit int) ([]*Ticket, error)
	// MarkUsed sets the usage flag for cp only if it is still false. marked is false when it was already set.
	MarkUsed(ctx context.Context, uuid string, cp Checkpoint) (marked bool, err error)
}

// QREncoder renders text into a PNG QR code.
type QREncoder interface {
	PNG(content string, size int) ([]byte, error)
}

// TicketService exposes read access to tickets for holders and staff.
type TicketService interface {
	GetByUUID(ctx context.Context, uuid string) (*Ticket, error)
	GetByOrderID(ctx context.Context, orderID string) (*Ticket, error)
	QRCode(ctx context.Context, uuid string) ([]byte, error)
	ListLatest(ctx context.Context) ([]*Ticket, error)
}
