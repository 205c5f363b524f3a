package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/delivery/http/middleware"
	"galaticketing/internal/domain"
)

// ScanRequest is the request body for POST /api/admin/scan. UUID may be the bare ticket
// UUID or the raw QR payload.
type ScanRequest struct {
	UUID string `json:"uuid"`
	Mode string `json:"mode"`
}

// Validate implements Validator.
func (s ScanRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.UUID) == "" {
		errs = append(errs, "uuid is required")
	}
	if strings.TrimSpace(s.Mode) == "" {
		errs = append(errs, "mode is required")
	}
	return errs
}

// ScanSuccessResponse is the success response envelope for POST /api/admin/scan (200).
type ScanSuccessResponse struct {
	Data  *domain.ScanResult `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ScanController handles checkpoint redemptions.
type ScanController struct {
	Logger  *slog.Logger
	Service domain.RedemptionService
}

// NewScanController creates a ScanController with the given logger and service.
func NewScanController(logger *slog.Logger, svc domain.RedemptionService) *ScanController {
	return &ScanController{
		Logger:  logger,
		Service: svc,
	}
}

// Scan godoc
// @Summary Redeem a ticket at a checkpoint
// @Description Redeems one entitlement. mode is DINNER, BAR, BUS_OUTBOUND or BUS_RETURN (CENA, BARRA, BUS_IDA and BUS_VUELTA are accepted). Rejections such as an unknown ticket or an already used perk are answered with 200 and success=false. Requires an ADMIN or DELEGATE token.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ScanRequest true "Scanned ticket and checkpoint"
// @Success 200 {object} controllers.ScanSuccessResponse "data contains success, message and ticket"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/scan [post]
func (c *ScanController) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Redeem(r.Context(), req.UUID, req.Mode)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	var staff string
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		staff = claims.Subject
	}
	c.Logger.InfoContext(r.Context(), "ticket scanned", "mode", req.Mode, "staff", staff, "success", result.Success, "message", result.Message)
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
