package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTicketForCart_Entitlements(t *testing.T) {
	now := time.Now()
	party := NewTicketForCart("ABC-123", "000000000001", "Ana", Cart{Type: TicketGuest, GraduateID: "g1", BasePriceCents: PriceGuestPartyCents}, now)
	assert.Equal(t, "abc-123", party.UUID)
	assert.Equal(t, TicketGuest, party.Type)
	assert.Equal(t, "g1", party.InviterID)
	assert.False(t, party.HasDinner)
	assert.True(t, party.HasBar)
	assert.False(t, party.HasBus)

	full := NewTicketForCart("u2", "000000000002", "Luis", Cart{Type: TicketGraduate, GraduateID: "g1", BasePriceCents: PriceGraduateCents, Bus: true}, now)
	assert.True(t, full.HasDinner)
	assert.True(t, full.HasBar)
	assert.True(t, full.HasBus)
	assert.False(t, full.UsedDinner || full.UsedBar || full.UsedBusOutbound || full.UsedBusReturn)
}

func TestTicket_EntitledUsedMarkUsed(t *testing.T) {
	tk := &Ticket{HasDinner: true, HasBar: true, HasBus: false}
	assert.True(t, tk.Entitled(CheckpointDinner))
	assert.True(t, tk.Entitled(CheckpointBar))
	assert.False(t, tk.Entitled(CheckpointBusOutbound))
	assert.False(t, tk.Entitled(CheckpointBusReturn))
	assert.False(t, tk.Entitled(Checkpoint("NOPE")))

	for _, cp := range []Checkpoint{CheckpointDinner, CheckpointBar, CheckpointBusOutbound, CheckpointBusReturn} {
		assert.False(t, tk.Used(cp))
		tk.MarkUsed(cp)
		assert.True(t, tk.Used(cp))
		tk.MarkUsed(cp)
		assert.True(t, tk.Used(cp), "flag stays set")
	}
}

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := QRPayload("6f1c2d3e-0000-4000-8000-000000000001")
	assert.Equal(t, `{"uuid":"6f1c2d3e-0000-4000-8000-000000000001"}`, payload)
	assert.Equal(t, "6f1c2d3e-0000-4000-8000-000000000001", ParseTicketIdentifier(payload))
}

func TestParseTicketIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  ABC  ", "abc"},
		{`{"uuid":" XYZ "}`, "xyz"},
		{`{"other":"x"}`, `{"other":"x"}`},
		{`{broken`, `{broken`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTicketIdentifier(tt.in), "input %q", tt.in)
	}
}
