package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// decodeEnvelope decodes the standard response envelope, keeping data raw for typed decoding.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope.Data, envelope.Error
}

// fakeGraduateService implements domain.GraduateService for handler tests.
type fakeGraduateService struct {
	session     *domain.GraduateSession
	authErr     error
	lastDNI     string
	lastPass    string
	guestNames  []string
	guestsErr   error
	check       *domain.InvitationCheck
	checkErr    error
	lastCode    string
	graduates   []*domain.Graduate
	listErr     error
	registered  *domain.Graduate
	password    string
	registerErr error
	lastInput   domain.GraduateInput
	deleteErr   error
	deletedID   string
}

func (f *fakeGraduateService) Register(ctx context.Context, in domain.GraduateInput) (*domain.Graduate, string, error) {
	f.lastInput = in
	if f.registerErr != nil {
		return nil, "", f.registerErr
	}
	return f.registered, f.password, nil
}

func (f *fakeGraduateService) Authenticate(ctx context.Context, dni, password string) (*domain.GraduateSession, error) {
	f.lastDNI, f.lastPass = dni, password
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.session, nil
}

func (f *fakeGraduateService) ListGuestNames(ctx context.Context, graduateID string) ([]string, error) {
	return f.guestNames, f.guestsErr
}

func (f *fakeGraduateService) CheckInvitationCode(ctx context.Context, code string) (*domain.InvitationCheck, error) {
	f.lastCode = code
	return f.check, f.checkErr
}

func (f *fakeGraduateService) List(ctx context.Context) ([]*domain.Graduate, error) {
	return f.graduates, f.listErr
}

func (f *fakeGraduateService) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

// fakePaymentService implements domain.PaymentService for handler tests.
type fakePaymentService struct {
	initRes      *domain.PaymentInit
	initErr      error
	lastCart     domain.Cart
	notifyErr    error
	lastParams   string
	lastSig      string
	bypassTicket *domain.Ticket
	bypassErr    error
}

func (f *fakePaymentService) Initiate(ctx context.Context, cart domain.Cart) (*domain.PaymentInit, error) {
	f.lastCart = cart
	return f.initRes, f.initErr
}

func (f *fakePaymentService) HandleNotification(ctx context.Context, merchantParams, signature string) error {
	f.lastParams, f.lastSig = merchantParams, signature
	return f.notifyErr
}

func (f *fakePaymentService) Bypass(ctx context.Context, cart domain.Cart) (*domain.Ticket, error) {
	f.lastCart = cart
	return f.bypassTicket, f.bypassErr
}

// fakeTicketService implements domain.TicketService for handler tests.
type fakeTicketService struct {
	ticket  *domain.Ticket
	err     error
	png     []byte
	latest  []*domain.Ticket
	lastArg string
}

func (f *fakeTicketService) GetByUUID(ctx context.Context, uuid string) (*domain.Ticket, error) {
	f.lastArg = uuid
	return f.ticket, f.err
}

func (f *fakeTicketService) GetByOrderID(ctx context.Context, orderID string) (*domain.Ticket, error) {
	f.lastArg = orderID
	return f.ticket, f.err
}

func (f *fakeTicketService) QRCode(ctx context.Context, uuid string) ([]byte, error) {
	f.lastArg = uuid
	return f.png, f.err
}

func (f *fakeTicketService) ListLatest(ctx context.Context) ([]*domain.Ticket, error) {
	return f.latest, f.err
}

// fakeStaffService implements domain.StaffService for handler tests.
type fakeStaffService struct {
	session *domain.StaffSession
	err     error
}

func (f *fakeStaffService) Login(ctx context.Context, password string) (*domain.StaffSession, error) {
	return f.session, f.err
}

// fakeStatsService implements domain.StatsService for handler tests.
type fakeStatsService struct {
	stats *domain.Stats
	err   error
}

func (f *fakeStatsService) Get(ctx context.Context) (*domain.Stats, error) {
	return f.stats, f.err
}

// fakeRedemptionService implements domain.RedemptionService for handler tests.
type fakeRedemptionService struct {
	result         *domain.ScanResult
	err            error
	lastIdentifier string
	lastMode       string
}

func (f *fakeRedemptionService) Redeem(ctx context.Context, identifier, mode string) (*domain.ScanResult, error) {
	f.lastIdentifier, f.lastMode = identifier, mode
	return f.result, f.err
}

// fakeEmailService implements domain.EmailService for handler tests.
type fakeEmailService struct {
	err      error
	lastTest *domain.TestEmailData
}

func (f *fakeEmailService) SendGraduateCredentials(ctx context.Context, data *domain.GraduateCredentialsEmailData) error {
	return f.err
}

func (f *fakeEmailService) SendTicket(ctx context.Context, data *domain.TicketEmailData) error {
	return f.err
}

func (f *fakeEmailService) SendTestEmail(ctx context.Context, data *domain.TestEmailData) error {
	f.lastTest = data
	return f.err
}
