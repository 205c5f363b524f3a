package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

// TestEmailRequest is the request body for POST /api/debug/test-email
type TestEmailRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (t TestEmailRequest) Validate() []string {
	email := strings.TrimSpace(t.Email)
	if email == "" {
		return []string{"email is required"}
	}
	if !emailRegexp.MatchString(email) {
		return []string{"invalid email format"}
	}
	return nil
}

// TestEmailResponse reports that the diagnostics email was handed to the mailer.
type TestEmailResponse struct {
	Sent bool   `json:"sent"`
	To   string `json:"to"`
}

// TestEmailSuccessResponse is the success response envelope for POST /api/debug/test-email (200).
type TestEmailSuccessResponse struct {
	Data  TestEmailResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DebugController exposes operational shortcuts. It is only routed when debug endpoints are enabled.
type DebugController struct {
	Logger   *slog.Logger
	Payments domain.PaymentService
	Email    domain.EmailService
}

// NewDebugController creates a DebugController with the given logger and services.
func NewDebugController(logger *slog.Logger, payments domain.PaymentService, email domain.EmailService) *DebugController {
	return &DebugController{
		Logger:   logger,
		Payments: payments,
		Email:    email,
	}
}

// BypassPayment godoc
// @Summary Issue a ticket without paying
// @Description Creates a TEST- order already PAID and settles it through the normal issuing path. Only available with DEBUG_ENDPOINTS=true and an ADMIN token.
// @Tags debug
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CartRequest true "Cart"
// @Success 201 {object} controllers.TicketSuccessResponse "data contains the issued ticket"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/debug/bypass-payment [post]
func (c *DebugController) BypassPayment(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ticket, err := c.Payments.Bypass(r.Context(), req.Cart())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.Logger.WarnContext(r.Context(), "payment bypassed", "order_id", ticket.OrderID, "type", ticket.Type)
	helpers.WriteJSONSuccess(w, http.StatusCreated, ticket)
}

// TestEmail godoc
// @Summary Send a diagnostics email
// @Description Sends a test message through the configured mail provider. Only available with DEBUG_ENDPOINTS=true and an ADMIN token.
// @Tags debug
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TestEmailRequest true "Recipient"
// @Success 200 {object} controllers.TestEmailSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/debug/test-email [post]
func (c *DebugController) TestEmail(w http.ResponseWriter, r *http.Request) {
	var req TestEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	to := strings.ToLower(strings.TrimSpace(req.Email))
	if err := c.Email.SendTestEmail(r.Context(), &domain.TestEmailData{Email: to}); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TestEmailResponse{Sent: true, To: to})
}
