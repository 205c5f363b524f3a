package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"galaticketing/internal/domain"
)

// qrImageSize is the edge length in pixels of ticket QR codes.
const qrImageSize = 300

type ticketService struct {
	tickets domain.TicketRepository
	encoder domain.QREncoder
}

// NewTicketService creates a TicketService that renders QR codes with encoder.
func NewTicketService(tickets domain.TicketRepository, encoder domain.QREncoder) domain.TicketService {
	return &ticketService{tickets: tickets, encoder: encoder}
}

func (s *ticketService) GetByUUID(ctx context.Context, uuid string) (*domain.Ticket, error) {
	uuid = domain.ParseTicketIdentifier(uuid)
	if uuid == "" {
		return nil, domain.ErrNotFound
	}
	return s.get(s.tickets.GetByUUID(ctx, uuid))
}

func (s *ticketService) GetByOrderID(ctx context.Context, orderID string) (*domain.Ticket, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.ErrNotFound
	}
	return s.get(s.tickets.GetByOrderID(ctx, orderID))
}

func (s *ticketService) get(t *domain.Ticket, err error) (*domain.Ticket, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

func (s *ticketService) QRCode(ctx context.Context, uuid string) ([]byte, error) {
	t, err := s.GetByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	png, err := s.encoder.PNG(domain.QRPayload(t.UUID), qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}

func (s *ticketService) ListLatest(ctx context.Context) ([]*domain.Ticket, error) {
	tickets, err := s.tickets.ListLatest(ctx, domain.LatestTicketsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
