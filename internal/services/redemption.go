package services

import (
	"context"
	"errors"
	"fmt"

	"galaticketing/internal/domain"
)

type redemptionService struct {
	tickets domain.TicketRepository
}

// NewRedemptionService creates a RedemptionService backed by the ticket store.
func NewRedemptionService(tickets domain.TicketRepository) domain.RedemptionService {
	return &redemptionService{tickets: tickets}
}

// Redeem answers a checkpoint scan. Only infrastructure failures are returned as errors.
func (s *redemptionService) Redeem(ctx context.Context, identifier, mode string) (*domain.ScanResult, error) {
	uuid := domain.ParseTicketIdentifier(identifier)
	if uuid == "" {
		return &domain.ScanResult{Message: domain.MsgTicketNotFound}, nil
	}
	ticket, err := s.tickets.GetByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ScanResult{Message: domain.MsgTicketNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	cp, ok := domain.ParseCheckpoint(mode)
	if !ok {
		return &domain.ScanResult{Message: domain.MsgUnknownMode, Ticket: ticket}, nil
	}
	if !ticket.Entitled(cp) {
		return &domain.ScanResult{Message: cp.NotIncludedMessage(), Ticket: ticket}, nil
	}
	if ticket.Used(cp) {
		return &domain.ScanResult{Message: cp.AlreadyUsedMessage(), Ticket: ticket}, nil
	}

	marked, err := s.tickets.MarkUsed(ctx, ticket.UUID, cp)
	if err != nil {
		return nil, fmt.Errorf("failed to mark ticket used: %w", err)
	}
	if !marked {
		// Another scanner redeemed it between the read and the update.
		if fresh, err := s.tickets.GetByUUID(ctx, ticket.UUID); err == nil {
			ticket = fresh
		} else {
			ticket.MarkUsed(cp)
		}
		return &domain.ScanResult{Message: cp.AlreadyUsedMessage(), Ticket: ticket}, nil
	}
	ticket.MarkUsed(cp)
	return &domain.ScanResult{Success: true, Message: domain.MsgAccessGranted, Ticket: ticket}, nil
}
