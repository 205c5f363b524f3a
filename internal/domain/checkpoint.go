package domain

import (
	"context"
	"strings"
)

// Checkpoint is a place where staff redeem one entitlement.
type Checkpoint string

const (
	CheckpointDinner      Checkpoint = "DINNER"
	CheckpointBar         Checkpoint = "BAR"
	CheckpointBusOutbound Checkpoint = "BUS_OUTBOUND"
	CheckpointBusReturn   Checkpoint = "BUS_RETURN"
)

var checkpointAliases = map[string]Checkpoint{
	"DINNER":       CheckpointDinner,
	"CENA":         CheckpointDinner,
	"BAR":          CheckpointBar,
	"BARRA":        CheckpointBar,
	"BUS_OUTBOUND": CheckpointBusOutbound,
	"BUS_IDA":      CheckpointBusOutbound,
	"BUS_RETURN":   CheckpointBusReturn,
	"BUS_VUELTA":   CheckpointBusReturn,
}

// ParseCheckpoint maps a scanner mode (English or the legacy Spanish names) to a Checkpoint.
func ParseCheckpoint(mode string) (Checkpoint, bool) {
	cp, ok := checkpointAliases[strings.ToUpper(strings.TrimSpace(mode))]
	return cp, ok
}

// Scan answer messages shown on the scanner screen.
const (
	MsgAccessGranted   = "ACCESS GRANTED"
	MsgTicketNotFound  = "TICKET NOT FOUND"
	MsgUnknownMode     = "UNKNOWN MODE"
	MsgDinnerExcluded  = "DINNER NOT INCLUDED"
	MsgBarExcluded     = "BAR NOT INCLUDED"
	MsgBusExcluded     = "BUS NOT INCLUDED"
	MsgDinnerUsed      = "DINNER: ALREADY USED"
	MsgDrinkUsed       = "DRINK: ALREADY USED"
	MsgBusOutboundUsed = "BUS OUTBOUND: ALREADY USED"
	MsgBusReturnUsed   = "BUS RETURN: ALREADY USED"
)

// NotIncludedMessage is the rejection shown when the ticket lacks the entitlement.
func (cp Checkpoint) NotIncludedMessage() string {
	switch cp {
	case CheckpointDinner:
		return MsgDinnerExcluded
	case CheckpointBar:
		return MsgBarExcluded
	default:
		return MsgBusExcluded
	}
}

// AlreadyUsedMessage is the rejection shown on a second redemption.
func (cp Checkpoint) AlreadyUsedMessage() string {
	switch cp {
	case CheckpointDinner:
		return MsgDinnerUsed
	case CheckpointBar:
		return MsgDrinkUsed
	case CheckpointBusOutbound:
		return MsgBusOutboundUsed
	default:
		return MsgBusReturnUsed
	}
}

// ScanResult is the scanner's answer. Rejections are answers, not errors.
// swagger:model ScanResult
type ScanResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Ticket  *Ticket `json:"ticket,omitempty"`
}

// RedemptionService redeems ticket entitlements at checkpoints.
type RedemptionService interface {
	Redeem(ctx context.Context, identifier, mode string) (*ScanResult, error)
}
