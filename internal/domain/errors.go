package domain

import "errors"

// Sentinel errors shared by services and mapped to HTTP status codes by controllers.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidCode            = errors.New("invalid invitation code")
	ErrInvitationExhausted    = errors.New("invitation limit reached")
	ErrGraduatePaid           = errors.New("graduate already paid")
	ErrDuplicateDNI           = errors.New("dni already registered")
	ErrDuplicateInviteCode    = errors.New("invitation code already in use")
	ErrOrderAlreadyProcessed  = errors.New("order already processed")
	ErrInvalidSignature       = errors.New("invalid payment signature")
	ErrPaymentGatewayDisabled = errors.New("payment gateway not configured")
)
