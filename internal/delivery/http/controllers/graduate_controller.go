package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// GraduateLoginRequest is the request body for POST /api/graduate/check
type GraduateLoginRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (g GraduateLoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(g.DNI) == "" {
		errs = append(errs, "dni is required")
	}
	if g.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// CheckCodeRequest is the request body for POST /api/guest/check-code
type CheckCodeRequest struct {
	Code string `json:"code"`
}

// Validate implements Validator.
func (c CheckCodeRequest) Validate() []string {
	if strings.TrimSpace(c.Code) == "" {
		return []string{"code is required"}
	}
	return nil
}

// CreateGraduateRequest is the request body for POST /api/admin/graduates
type CreateGraduateRequest struct {
	DNI   string `json:"dni"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate implements Validator.
func (c CreateGraduateRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.DNI) == "" {
		errs = append(errs, "dni is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if email := strings.TrimSpace(c.Email); email != "" && !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// CreateGraduateResponse carries the new graduate and the generated password, shown once to staff.
type CreateGraduateResponse struct {
	Graduate *domain.Graduate `json:"graduate"`
	Password string           `json:"password"`
}

// GraduateSessionSuccessResponse is the success response envelope for POST /api/graduate/check (200).
type GraduateSessionSuccessResponse struct {
	Data  *domain.GraduateSession `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// GuestNamesSuccessResponse is the success response envelope for GET /api/graduate/{id}/guests (200).
type GuestNamesSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// InvitationCheckSuccessResponse is the success response envelope for POST /api/guest/check-code (200).
type InvitationCheckSuccessResponse struct {
	Data  *domain.InvitationCheck `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListGraduatesSuccessResponse is the success response envelope for GET /api/admin/graduates (200).
type ListGraduatesSuccessResponse struct {
	Data  []*domain.Graduate `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateGraduateSuccessResponse is the success response envelope for POST /api/admin/graduates (201).
type CreateGraduateSuccessResponse struct {
	Data  CreateGraduateResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// GraduateController handles graduate login, invitations and the staff roster.
type GraduateController struct {
	Logger  *slog.Logger
	Service domain.GraduateService
}

// NewGraduateController creates a GraduateController with the given logger and service.
func NewGraduateController(logger *slog.Logger, svc domain.GraduateService) *GraduateController {
	return &GraduateController{
		Logger:  logger,
		Service: svc,
	}
}

// Check godoc
// @Summary Graduate login
// @Description Authenticate a graduate with DNI and the emailed password. Returns the graduate (no secrets), their ticket once paid, and the names of guests who bought with their code.
// @Tags graduates
// @Accept json
// @Produce json
// @Param body body GraduateLoginRequest true "Graduate credentials"
// @Success 200 {object} controllers.GraduateSessionSuccessResponse "data contains graduate, ticket and guest_names"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/graduate/check [post]
func (c *GraduateController) Check(w http.ResponseWriter, r *http.Request) {
	var req GraduateLoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Authenticate(r.Context(), req.DNI, req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// Guests godoc
// @Summary List guest names
// @Description Names on the GUEST tickets bought with the graduate's invitation code, oldest first.
// @Tags graduates
// @Produce json
// @Param id path string true "Graduate ID"
// @Success 200 {object} controllers.GuestNamesSuccessResponse "data contains the guest names"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/graduate/{id}/guests [get]
func (c *GraduateController) Guests(w http.ResponseWriter, r *http.Request) {
	names, err := c.Service.ListGuestNames(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, names)
}

// CheckCode godoc
// @Summary Check an invitation code
// @Description Tells a guest whether the code belongs to a paid graduate with invitations left. An unusable code is still a 200 with valid=false and an error message.
// @Tags guests
// @Accept json
// @Produce json
// @Param body body CheckCodeRequest true "Invitation code"
// @Success 200 {object} controllers.InvitationCheckSuccessResponse "data contains valid, graduate_id and remaining"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guest/check-code [post]
func (c *GraduateController) CheckCode(w http.ResponseWriter, r *http.Request) {
	var req CheckCodeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	check, err := c.Service.CheckInvitationCode(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, check)
}

// List godoc
// @Summary List graduates
// @Description All registered graduates sorted by name. Requires an ADMIN or DELEGATE token.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListGraduatesSuccessResponse "data contains the graduates"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/graduates [get]
func (c *GraduateController) List(w http.ResponseWriter, r *http.Request) {
	graduates, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if graduates == nil {
		graduates = []*domain.Graduate{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, graduates)
}

// Create godoc
// @Summary Register a graduate
// @Description Creates a graduate with a generated 8-character password and emails the credentials. The password is also returned once. Requires an ADMIN or DELEGATE token.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGraduateRequest true "Graduate data"
// @Success 201 {object} controllers.CreateGraduateSuccessResponse "data contains graduate and password"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/graduates [post]
func (c *GraduateController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGraduateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, password, err := c.Service.Register(r.Context(), domain.GraduateInput{
		DNI:   req.DNI,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateGraduateResponse{Graduate: g, Password: password})
}

// Delete godoc
// @Summary Delete a graduate
// @Description Removes a graduate who has not paid yet. Requires an ADMIN token.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Graduate ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (graduate already paid)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/graduates/{id} [delete]
func (c *GraduateController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
