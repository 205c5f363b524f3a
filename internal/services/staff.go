package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"galaticketing/internal/domain"
)

// StaffCredentials are the shared passwords for each staff role. An empty password disables the role.
type StaffCredentials struct {
	AdminPassword    string
	DelegatePassword string
}

type staffService struct {
	credentials StaffCredentials
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
	now         func() time.Time
}

// NewStaffService creates a StaffService that issues role tokens valid for tokenExpiry.
func NewStaffService(credentials StaffCredentials, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.StaffService {
	return &staffService{
		credentials: credentials,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
		now:         time.Now,
	}
}

func (s *staffService) Login(ctx context.Context, password string) (*domain.StaffSession, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role, ok := s.match(password)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(strings.ToLower(string(role)), []string{string(role)}, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &domain.StaffSession{
		Role:      role,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: s.now().Add(s.tokenExpiry).UTC(),
	}, nil
}

// match checks every configured password in constant time.
func (s *staffService) match(password string) (domain.StaffRole, bool) {
	admin := secretEquals(s.credentials.AdminPassword, password)
	delegate := secretEquals(s.credentials.DelegatePassword, password)
	switch {
	case admin:
		return domain.RoleAdmin, true
	case delegate:
		return domain.RoleDelegate, true
	}
	return "", false
}

func secretEquals(configured, given string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}
