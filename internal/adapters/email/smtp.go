package email

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// SMTPConfig holds configuration for an SMTP relay (e.g. Gmail on port 587 with STARTTLS).
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr        string
	auth        smtp.Auth
	fromAddress string
	fromName    string
	send        sendMailFunc
	now         func() time.Time
}

func newSMTPMailer(cfg SMTPConfig, fromAddress, fromName string) (*smtpMailer, error) {
	if cfg.Host == "" || cfg.Port == "" || fromAddress == "" {
		return nil, fmt.Errorf("smtp mailer requires host, port and from address (host=%q port=%q from=%q)", cfg.Host, cfg.Port, fromAddress)
	}
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &smtpMailer{
		addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		auth:        auth,
		fromAddress: fromAddress,
		fromName:    fromName,
		send:        smtp.SendMail,
		now:         time.Now,
	}, nil
}

func (m *smtpMailer) Send(to, subject, html, text string) error {
	msg, err := m.buildMessage(to, subject, html, text)
	if err != nil {
		return err
	}
	if err := m.send(m.addr, m.auth, m.fromAddress, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	log.Printf("[MAILER] Email sent via SMTP to %s", to)
	return nil
}

// buildMessage renders a multipart/alternative message with quoted-printable text and HTML parts.
func (m *smtpMailer) buildMessage(to, subject, html, text string) ([]byte, error) {
	if strings.ContainsAny(to, "\r\n") {
		return nil, fmt.Errorf("invalid recipient %q", to)
	}
	boundary, err := randomBoundary()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", formatAddress(mime.QEncoding.Encode("utf-8", m.fromName), m.fromAddress))
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", m.now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	parts := []struct{ contentType, body string }{
		{"text/plain", text},
		{"text/html", html},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: %s; charset=UTF-8\r\n", p.contentType)
		buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")
		qp := quotedprintable.NewWriter(&buf)
		if _, err := qp.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("encode %s part: %w", p.contentType, err)
		}
		if err := qp.Close(); err != nil {
			return nil, fmt.Errorf("encode %s part: %w", p.contentType, err)
		}
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes(), nil
}

func randomBoundary() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate boundary: %w", err)
	}
	return "gala-" + hex.EncodeToString(b), nil
}
