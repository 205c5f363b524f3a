package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// serviceErrors maps domain sentinels to HTTP responses. Order matters: first match wins.
var serviceErrors = []errorMapping{
	{domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
	{domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	{domain.ErrInvalidSignature, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	{domain.ErrInvalidCode, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden, helpers.ErrCodeForbidden},
	{domain.ErrGraduatePaid, http.StatusConflict, helpers.ErrCodeConflict},
	{domain.ErrDuplicateDNI, http.StatusConflict, helpers.ErrCodeConflict},
	{domain.ErrDuplicateInviteCode, http.StatusConflict, helpers.ErrCodeConflict},
	{domain.ErrInvitationExhausted, http.StatusConflict, helpers.ErrCodeConflict},
	{domain.ErrOrderAlreadyProcessed, http.StatusConflict, helpers.ErrCodeConflict},
	{domain.ErrPaymentGatewayDisabled, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable},
}

// writeServiceError answers with the status mapped from err. Unmapped errors are logged and become 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			helpers.WriteJSONError(w, m.status, m.code, err.Error())
			return
		}
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}
