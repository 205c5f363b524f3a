package controllers

import (
	"log/slog"
	"net/http"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

// StaffLoginRequest is the request body for POST /api/staff/login
type StaffLoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (s StaffLoginRequest) Validate() []string {
	if s.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// StaffLoginSuccessResponse is the success response envelope for POST /api/staff/login (200).
type StaffLoginSuccessResponse struct {
	Data  *domain.StaffSession `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// StatsSuccessResponse is the success response envelope for GET /api/admin/stats (200).
type StatsSuccessResponse struct {
	Data  *domain.Stats     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StaffController handles staff login and the admin dashboard.
type StaffController struct {
	Logger  *slog.Logger
	Service domain.StaffService
	Stats   domain.StatsService
}

// NewStaffController creates a StaffController with the given logger and services.
func NewStaffController(logger *slog.Logger, svc domain.StaffService, stats domain.StatsService) *StaffController {
	return &StaffController{
		Logger:  logger,
		Service: svc,
		Stats:   stats,
	}
}

// Login godoc
// @Summary Staff login
// @Description Exchanges the shared ADMIN or DELEGATE password for a Bearer token carrying the role.
// @Tags staff
// @Accept json
// @Produce json
// @Param body body StaffLoginRequest true "Staff password"
// @Success 200 {object} controllers.StaffLoginSuccessResponse "data contains role, token, token_type and expires_at"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/staff/login [post]
func (c *StaffController) Login(w http.ResponseWriter, r *http.Request) {
	var req StaffLoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "staff login", "role", session.Role)
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Revenue, ticket counts by type and entitlement, graduate counts and redemptions per checkpoint. Requires an ADMIN token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StatsSuccessResponse "data contains the counters"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/stats [get]
func (c *StaffController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.Get(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
