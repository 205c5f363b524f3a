package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"galaticketing/internal/domain"
)

const graduatePasswordLength = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type graduateService struct {
	graduates    domain.GraduateRepository
	tickets      domain.TicketRepository
	hasher       domain.PasswordHasher
	secrets      domain.SecretGenerator
	emailService domain.EmailService
	loginURL     string
	now          func() time.Time
}

// NewGraduateService creates a GraduateService. publicURL is the SPA origin used in credential emails.
func NewGraduateService(graduates domain.GraduateRepository, tickets domain.TicketRepository, hasher domain.PasswordHasher, secrets domain.SecretGenerator, emailService domain.EmailService, publicURL string) domain.GraduateService {
	return &graduateService{
		graduates:    graduates,
		tickets:      tickets,
		hasher:       hasher,
		secrets:      secrets,
		emailService: emailService,
		loginURL:     strings.TrimSuffix(publicURL, "/") + "/#/login",
		now:          time.Now,
	}
}

func (s *graduateService) Register(ctx context.Context, in domain.GraduateInput) (*domain.Graduate, string, error) {
	g := domain.NewGraduate(in.DNI, in.Name, in.Email, in.Phone, s.now().UTC())
	if g.DNI == "" || g.Name == "" {
		return nil, "", fmt.Errorf("%w: dni and name are required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(g.Email) {
		return nil, "", fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	password, err := s.secrets.Generate(graduatePasswordLength)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate password: %w", err)
	}
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	g.Salt = salt
	g.PasswordHash = hash
	if err := s.graduates.Create(ctx, g); err != nil {
		if errors.Is(err, domain.ErrDuplicateDNI) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("failed to create graduate: %w", err)
	}
	if s.emailService != nil {
		data := &domain.GraduateCredentialsEmailData{
			Email:    g.Email,
			Name:     g.Name,
			DNI:      g.DNI,
			Password: password,
			LoginURL: s.loginURL,
		}
		// Staff also get the password in the response; mail failures are only logged.
		if err := s.emailService.SendGraduateCredentials(ctx, data); err != nil {
			log.Printf("[EMAIL] Failed to send credentials to graduate %s: %v", g.ID, err)
		}
	}
	return g, password, nil
}

func (s *graduateService) Authenticate(ctx context.Context, dni, password string) (*domain.GraduateSession, error) {
	dni = domain.NormalizeDNI(dni)
	if dni == "" || password == "" {
		return nil, fmt.Errorf("%w: dni and password are required", domain.ErrInvalidInput)
	}
	g, err := s.graduates.GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get graduate: %w", err)
	}
	if err := s.hasher.Compare(g.PasswordHash, g.Salt, strings.TrimSpace(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	session := &domain.GraduateSession{Graduate: g, GuestNames: []string{}}
	if !g.Paid {
		return session, nil
	}
	ticket, err := s.tickets.GetGraduateTicket(ctx, g.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get graduate ticket: %w", err)
	}
	session.Ticket = ticket
	names, err := s.tickets.ListGuestNames(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	session.GuestNames = names
	return session, nil
}

func (s *graduateService) ListGuestNames(ctx context.Context, graduateID string) ([]string, error) {
	if _, err := s.graduates.GetByID(ctx, graduateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get graduate: %w", err)
	}
	names, err := s.tickets.ListGuestNames(ctx, graduateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return names, nil
}

func (s *graduateService) CheckInvitationCode(ctx context.Context, code string) (*domain.InvitationCheck, error) {
	code = domain.NormalizeInvitationCode(code)
	if code == "" {
		return &domain.InvitationCheck{Error: domain.ErrInvalidCode.Error()}, nil
	}
	g, err := s.graduates.GetByInvitationCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.InvitationCheck{Error: domain.ErrInvalidCode.Error()}, nil
		}
		return nil, fmt.Errorf("failed to look up invitation code: %w", err)
	}
	used, err := s.tickets.CountGuests(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count guests: %w", err)
	}
	remaining := domain.MaxGuestsPerGraduate - used
	if remaining <= 0 {
		return &domain.InvitationCheck{GraduateID: g.ID, Error: domain.ErrInvitationExhausted.Error()}, nil
	}
	return &domain.InvitationCheck{Valid: true, GraduateID: g.ID, Remaining: remaining}, nil
}

func (s *graduateService) List(ctx context.Context) ([]*domain.Graduate, error) {
	graduates, err := s.graduates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list graduates: %w", err)
	}
	return graduates, nil
}

func (s *graduateService) Delete(ctx context.Context, id string) error {
	deleted, err := s.graduates.DeleteUnpaid(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete graduate: %w", err)
	}
	if deleted {
		return nil
	}
	if _, err := s.graduates.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get graduate: %w", err)
	}
	return domain.ErrGraduatePaid
}
