package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// GraduateCredentialsEmailData holds data for the email sent when staff register a graduate.
type GraduateCredentialsEmailData struct {
	Email    string
	Name     string
	DNI      string
	Password string
	LoginURL string
}

// TicketEmailData holds data for the ticket delivery email.
type TicketEmailData struct {
	Email          string
	HolderName     string
	TicketUUID     string
	TicketURL      string
	QRCodeURL      string
	HasDinner      bool
	HasBus         bool
	InvitationCode string
}

// TestEmailData holds data for the SMTP diagnostics email.
type TestEmailData struct {
	Email string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendGraduateCredentials(ctx context.Context, data *GraduateCredentialsEmailData) error
	SendTicket(ctx context.Context, data *TicketEmailData) error
	SendTestEmail(ctx context.Context, data *TestEmailData) error
}
