package controllers

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

// maxWebhookBytes caps gateway notification bodies.
const maxWebhookBytes = 64 << 10

// CartRequest is the request body for POST /api/payment/init and POST /api/debug/bypass-payment.
// Any client-side total is ignored; the server prices the cart.
type CartRequest struct {
	Type           string `json:"type"`
	GraduateID     string `json:"graduate_id"`
	GuestName      string `json:"guest_name"`
	GuestEmail     string `json:"guest_email"`
	BasePriceCents int64  `json:"base_price_cents"`
	Bus            bool   `json:"bus"`
}

// Validate implements Validator.
func (c CartRequest) Validate() []string {
	var errs []string
	switch domain.TicketType(strings.ToUpper(strings.TrimSpace(c.Type))) {
	case domain.TicketGraduate:
	case domain.TicketGuest:
		if strings.TrimSpace(c.GuestName) == "" {
			errs = append(errs, "guest_name is required for GUEST tickets")
		}
	default:
		errs = append(errs, "type must be GRADUATE or GUEST")
	}
	if strings.TrimSpace(c.GraduateID) == "" {
		errs = append(errs, "graduate_id is required")
	}
	if c.BasePriceCents <= 0 {
		errs = append(errs, "base_price_cents must be positive")
	}
	if email := strings.TrimSpace(c.GuestEmail); email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid guest_email format")
	}
	return errs
}

// Cart converts the request into a domain cart.
func (c CartRequest) Cart() domain.Cart {
	cart := domain.Cart{
		Type:           domain.TicketType(c.Type),
		GraduateID:     c.GraduateID,
		GuestName:      c.GuestName,
		GuestEmail:     c.GuestEmail,
		BasePriceCents: c.BasePriceCents,
		Bus:            c.Bus,
	}
	cart.Normalize()
	return cart
}

// NotificationRequest is the gateway's webhook payload, sent form-encoded or as JSON.
type NotificationRequest struct {
	SignatureVersion   string `json:"Ds_SignatureVersion"`
	MerchantParameters string `json:"Ds_MerchantParameters"`
	Signature          string `json:"Ds_Signature"`
}

// Validate implements Validator.
func (n NotificationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(n.MerchantParameters) == "" {
		errs = append(errs, "Ds_MerchantParameters is required")
	}
	if strings.TrimSpace(n.Signature) == "" {
		errs = append(errs, "Ds_Signature is required")
	}
	return errs
}

// NotificationAck is returned once a notification has been processed.
type NotificationAck struct {
	Received bool `json:"received"`
}

// PaymentInitSuccessResponse is the success response envelope for POST /api/payment/init (200).
type PaymentInitSuccessResponse struct {
	Data  *domain.PaymentInit `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// NotificationSuccessResponse is the success response envelope for POST /api/payment/webhook (200).
type NotificationSuccessResponse struct {
	Data  NotificationAck   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PaymentController handles checkout and gateway notifications.
type PaymentController struct {
	Logger  *slog.Logger
	Service domain.PaymentService
}

// NewPaymentController creates a PaymentController with the given logger and service.
func NewPaymentController(logger *slog.Logger, svc domain.PaymentService) *PaymentController {
	return &PaymentController{
		Logger:  logger,
		Service: svc,
	}
}

// Init godoc
// @Summary Start a checkout
// @Description Validates and prices the cart, stores a PENDING order and returns the signed form the browser must post to the payment gateway.
// @Tags payment
// @Accept json
// @Produce json
// @Param body body CartRequest true "Cart"
// @Success 200 {object} controllers.PaymentInitSuccessResponse "data contains order_id, amount_cents and form"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/payment/init [post]
func (c *PaymentController) Init(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.Initiate(r.Context(), req.Cart())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// Webhook godoc
// @Summary Payment gateway notification
// @Description Server-to-server notification from the gateway. Verifies the signature and settles the order: issues the ticket on an authorized payment, marks the order FAILED otherwise. Repeated notifications for a PAID order are acknowledged without effect.
// @Tags payment
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param Ds_SignatureVersion formData string false "Signature version"
// @Param Ds_MerchantParameters formData string true "Base64 merchant parameters"
// @Param Ds_Signature formData string true "Signature"
// @Success 200 {object} controllers.NotificationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/payment/webhook [post]
func (c *PaymentController) Webhook(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeNotification(w, r)
	if !ok {
		return
	}
	if err := c.Service.HandleNotification(r.Context(), req.MerchantParameters, req.Signature); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NotificationAck{Received: true})
}

func (c *PaymentController) decodeNotification(w http.ResponseWriter, r *http.Request) (NotificationRequest, bool) {
	var req NotificationRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return req, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return req, false
		}
		req.SignatureVersion = r.PostForm.Get("Ds_SignatureVersion")
		req.MerchantParameters = r.PostForm.Get("Ds_MerchantParameters")
		req.Signature = r.PostForm.Get("Ds_Signature")
	}
	if errs := req.Validate(); len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "))
		return req, false
	}
	return req, true
}
