package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"galaticketing/internal/domain"
)

const (
	invitationCodePrefix   = "INV-"
	invitationCodeLength   = 6
	invitationCodeAttempts = 5
	orderIDAttempts        = 3
	bypassOrderPrefix      = "TEST-"
)

// PaymentConfig holds the pricing and URL settings of the payment service.
type PaymentConfig struct {
	ManagementFeeCents int64
	PublicURL          string
}

type paymentService struct {
	orders       domain.OrderRepository
	tickets      domain.TicketRepository
	graduates    domain.GraduateRepository
	gateway      domain.PaymentGateway
	orderIDs     domain.OrderIDGenerator
	secrets      domain.SecretGenerator
	emailService domain.EmailService
	logger       *slog.Logger
	feeCents     int64
	publicURL    string
	now          func() time.Time
	newUUID      func() string
}

// NewPaymentService creates a PaymentService wired to the gateway and the store.
func NewPaymentService(orders domain.OrderRepository, tickets domain.TicketRepository, graduates domain.GraduateRepository, gateway domain.PaymentGateway, orderIDs domain.OrderIDGenerator, secrets domain.SecretGenerator, emailService domain.EmailService, logger *slog.Logger, cfg PaymentConfig) domain.PaymentService {
	return &paymentService{
		orders:       orders,
		tickets:      tickets,
		graduates:    graduates,
		gateway:      gateway,
		orderIDs:     orderIDs,
		secrets:      secrets,
		emailService: emailService,
		logger:       logger,
		feeCents:     cfg.ManagementFeeCents,
		publicURL:    strings.TrimSuffix(cfg.PublicURL, "/"),
		now:          time.Now,
		newUUID:      func() string { return uuid.NewString() },
	}
}

// checkCart validates the cart and the inviter's state. It returns the inviter graduate.
func (s *paymentService) checkCart(ctx context.Context, cart *domain.Cart) (*domain.Graduate, error) {
	cart.Normalize()
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	if cart.GuestEmail != "" && !emailRegexp.MatchString(cart.GuestEmail) {
		return nil, fmt.Errorf("%w: invalid guest_email", domain.ErrInvalidInput)
	}
	g, err := s.graduates.GetByID(ctx, cart.GraduateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get graduate: %w", err)
	}
	switch cart.Type {
	case domain.TicketGraduate:
		if g.Paid {
			return nil, domain.ErrGraduatePaid
		}
	case domain.TicketGuest:
		if !g.Paid {
			return nil, domain.ErrInvalidCode
		}
		used, err := s.tickets.CountGuests(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count guests: %w", err)
		}
		if used >= domain.MaxGuestsPerGraduate {
			return nil, domain.ErrInvitationExhausted
		}
	}
	return g, nil
}

func (s *paymentService) Initiate(ctx context.Context, cart domain.Cart) (*domain.PaymentInit, error) {
	if _, err := s.checkCart(ctx, &cart); err != nil {
		return nil, err
	}
	amount := cart.TotalCents(s.feeCents)
	for attempt := 1; ; attempt++ {
		orderID, err := s.orderIDs.NewOrderID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate order id: %w", err)
		}
		order := domain.NewOrder(orderID, amount, cart, s.now().UTC())
		form, err := s.gateway.BuildForm(order)
		if err != nil {
			if errors.Is(err, domain.ErrPaymentGatewayDisabled) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to build payment form: %w", err)
		}
		err = s.orders.Create(ctx, order)
		if errors.Is(err, domain.ErrOrderAlreadyProcessed) && attempt < orderIDAttempts {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		s.logger.InfoContext(ctx, "payment initiated", "order_id", orderID, "type", cart.Type, "amount_cents", amount)
		return &domain.PaymentInit{OrderID: orderID, AmountCents: amount, Form: form}, nil
	}
}

func (s *paymentService) HandleNotification(ctx context.Context, merchantParams, signature string) error {
	n, err := s.gateway.VerifyNotification(merchantParams, signature)
	if err != nil {
		return err
	}
	order, err := s.orders.GetByOrderID(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("order %s: %w", n.OrderID, err)
		}
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order.Status == domain.OrderPaid {
		s.logger.InfoContext(ctx, "duplicate payment notification ignored", "order_id", order.OrderID)
		return nil
	}
	if !n.Authorized() {
		if err := s.orders.MarkFailed(ctx, order.OrderID); err != nil {
			return fmt.Errorf("failed to mark order failed: %w", err)
		}
		s.logger.WarnContext(ctx, "payment denied", "order_id", order.OrderID, "response", *n.ResponseCode)
		return nil
	}

	_, err = s.settle(ctx, order)
	switch {
	case err == nil, errors.Is(err, domain.ErrOrderAlreadyProcessed):
		return nil
	case errors.Is(err, domain.ErrGraduatePaid), errors.Is(err, domain.ErrInvitationExhausted), errors.Is(err, domain.ErrInvalidCode):
		// Money was captured but no ticket can be issued; staff must refund manually.
		s.logger.ErrorContext(ctx, "paid order cannot be fulfilled", "order_id", order.OrderID, "err", err)
		if mErr := s.orders.MarkFailed(ctx, order.OrderID); mErr != nil {
			return fmt.Errorf("failed to mark order failed: %w", mErr)
		}
		return nil
	default:
		return err
	}
}

func (s *paymentService) Bypass(ctx context.Context, cart domain.Cart) (*domain.Ticket, error) {
	if _, err := s.checkCart(ctx, &cart); err != nil {
		return nil, err
	}
	id, err := s.orderIDs.NewOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	order := domain.NewOrder(bypassOrderPrefix+id, cart.TotalCents(s.feeCents), cart, s.now().UTC())
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.logger.WarnContext(ctx, "payment bypassed", "order_id", order.OrderID, "type", cart.Type)
	ticket, err := s.settle(ctx, order)
	if err != nil {
		// A bypass order that issued nothing must not linger as PENDING.
		if mErr := s.orders.MarkFailed(ctx, order.OrderID); mErr != nil {
			s.logger.ErrorContext(ctx, "failed to mark bypass order failed", "order_id", order.OrderID, "err", mErr)
		}
		return nil, err
	}
	return ticket, nil
}

// settle issues the ticket for a confirmed order and emails it.
func (s *paymentService) settle(ctx context.Context, order *domain.Order) (*domain.Ticket, error) {
	cart := order.Cart
	g, err := s.graduates.GetByID(ctx, cart.GraduateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get graduate: %w", err)
	}
	holder, recipient := g.Name, g.Email
	if cart.Type == domain.TicketGuest {
		holder, recipient = cart.GuestName, cart.GuestEmail
	}
	ticket := domain.NewTicketForCart(s.newUUID(), order.OrderID, holder, cart, s.now().UTC())
	iss := &domain.Issuance{OrderID: order.OrderID, Ticket: ticket}

	for attempt := 1; ; attempt++ {
		if cart.Type == domain.TicketGraduate {
			code, err := s.secrets.Generate(invitationCodeLength)
			if err != nil {
				return nil, fmt.Errorf("failed to generate invitation code: %w", err)
			}
			iss.InvitationCode = invitationCodePrefix + code
		}
		err = s.tickets.Issue(ctx, iss)
		if errors.Is(err, domain.ErrDuplicateInviteCode) && attempt < invitationCodeAttempts {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, domain.ErrOrderAlreadyProcessed) || errors.Is(err, domain.ErrGraduatePaid) ||
			errors.Is(err, domain.ErrInvitationExhausted) || errors.Is(err, domain.ErrInvalidCode) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to issue ticket: %w", err)
	}
	s.logger.InfoContext(ctx, "ticket issued", "order_id", order.OrderID, "uuid", ticket.UUID, "type", ticket.Type)

	if s.emailService != nil && recipient != "" {
		data := &domain.TicketEmailData{
			Email:          recipient,
			HolderName:     holder,
			TicketUUID:     ticket.UUID,
			TicketURL:      s.publicURL + "/#/ticket?order=" + order.OrderID,
			QRCodeURL:      s.publicURL + "/api/tickets/" + ticket.UUID + "/qr",
			HasDinner:      ticket.HasDinner,
			HasBus:         ticket.HasBus,
			InvitationCode: iss.InvitationCode,
		}
		if err := s.emailService.SendTicket(ctx, data); err != nil {
			s.logger.ErrorContext(ctx, "failed to send ticket email", "order_id", order.OrderID, "err", err)
		}
	}
	return ticket, nil
}
