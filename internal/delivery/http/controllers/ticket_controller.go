package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

// TicketSuccessResponse is the success response envelope for ticket lookups (200).
type TicketSuccessResponse struct {
	Data  *domain.Ticket    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListTicketsSuccessResponse is the success response envelope for GET /api/admin/tickets (200).
type ListTicketsSuccessResponse struct {
	Data  []*domain.Ticket  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TicketController serves tickets and their QR images.
type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

// NewTicketController creates a TicketController with the given logger and service.
func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get a ticket
// @Description Returns the ticket with its entitlements and usage flags.
// @Tags tickets
// @Produce json
// @Param uuid path string true "Ticket UUID"
// @Success 200 {object} controllers.TicketSuccessResponse "data contains the ticket"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/tickets/{uuid} [get]
func (c *TicketController) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := c.Service.GetByUUID(r.Context(), r.PathValue("uuid"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ticket)
}

// QR godoc
// @Summary Ticket QR code
// @Description PNG image of the QR code that encodes {"uuid":"..."} for the scanner.
// @Tags tickets
// @Produce png
// @Param uuid path string true "Ticket UUID"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/tickets/{uuid}/qr [get]
func (c *TicketController) QR(w http.ResponseWriter, r *http.Request) {
	png, err := c.Service.QRCode(r.Context(), r.PathValue("uuid"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GetByOrder godoc
// @Summary Get the ticket of an order
// @Description Used by the payment return page. 404 until the gateway notification has been processed.
// @Tags tickets
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} controllers.TicketSuccessResponse "data contains the ticket"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/orders/{orderID}/ticket [get]
func (c *TicketController) GetByOrder(w http.ResponseWriter, r *http.Request) {
	ticket, err := c.Service.GetByOrderID(r.Context(), r.PathValue("orderID"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ticket)
}

// ListLatest godoc
// @Summary List latest tickets
// @Description The 300 most recently issued tickets, newest first. Requires an ADMIN token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListTicketsSuccessResponse "data contains the tickets"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/tickets [get]
func (c *TicketController) ListLatest(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.Service.ListLatest(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if tickets == nil {
		tickets = []*domain.Ticket{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tickets)
}
