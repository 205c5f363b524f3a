package domain

import (
	"context"
	"time"
)

// StaffRole is the access level of a staff session.
type StaffRole string

const (
	RoleAdmin    StaffRole = "ADMIN"
	RoleDelegate StaffRole = "DELEGATE"
)

// StaffSession is returned on a successful staff login.
// swagger:model StaffSession
type StaffSession struct {
	Role      StaffRole `json:"role"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// SecretGenerator produces random human-typeable secrets (passwords, invitation codes).
type SecretGenerator interface {
	Generate(length int) (string, error)
}

// TokenClaims is what a verified token says about its bearer.
type TokenClaims struct {
	Subject string
	Roles   []string
}

// HasRole reports whether any of roles is present in the claims.
func (c *TokenClaims) HasRole(roles ...StaffRole) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == string(want) {
				return true
			}
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// StaffService authenticates admins and delegates against the shared staff passwords.
type StaffService interface {
	Login(ctx context.Context, password string) (*StaffSession, error)
}
