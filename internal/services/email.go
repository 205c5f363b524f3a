package services

import (
	"context"
	"fmt"
	"log"

	"galaticketing/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) send(to, templateName string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	return nil
}

// SendGraduateCredentials mails the generated login password using the "graduate_credentials" template.
func (s *emailService) SendGraduateCredentials(ctx context.Context, data *domain.GraduateCredentialsEmailData) error {
	if data == nil {
		return fmt.Errorf("graduate credentials data is nil")
	}
	if err := s.send(data.Email, "graduate_credentials", data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Credentials sent to %s", data.Email)
	return nil
}

// SendTicket mails the ticket and its QR link using the "ticket" template.
func (s *emailService) SendTicket(ctx context.Context, data *domain.TicketEmailData) error {
	if data == nil {
		return fmt.Errorf("ticket email data is nil")
	}
	if err := s.send(data.Email, "ticket", data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Ticket %s sent to %s", data.TicketUUID, data.Email)
	return nil
}

// SendTestEmail mails a diagnostics message using the "test_email" template.
func (s *emailService) SendTestEmail(ctx context.Context, data *domain.TestEmailData) error {
	if data == nil {
		return fmt.Errorf("test email data is nil")
	}
	if err := s.send(data.Email, "test_email", data); err != nil {
		return err
	}
	log.Printf("[EMAIL] Test email sent to %s", data.Email)
	return nil
}
