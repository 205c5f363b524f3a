package domain

import (
	"context"
	"strings"
	"time"
)

// MaxGuestsPerGraduate caps how many GUEST tickets may reference one inviter.
const MaxGuestsPerGraduate = 3

// Graduate is a student attending the gala. Credentials are generated on creation.
// swagger:model Graduate
type Graduate struct {
	ID             string    `json:"id"`
	DNI            string    `json:"dni"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PasswordHash   string    `json:"-"`
	Salt           string    `json:"-"`
	Paid           bool      `json:"paid"`
	InvitationCode *string   `json:"invitation_code"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewGraduate returns a new unpaid Graduate. ID is typically set by the repository on create.
func NewGraduate(dni, name, email, phone string, createdAt time.Time) *Graduate {
	return &Graduate{
		DNI:       NormalizeDNI(dni),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: createdAt,
	}
}

// NormalizeDNI trims and uppercases a national ID so lookups are case-insensitive.
func NormalizeDNI(dni string) string {
	return strings.ToUpper(strings.TrimSpace(dni))
}

// NormalizeInvitationCode trims and uppercases an invitation code.
func NormalizeInvitationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GraduateInput carries the fields staff provide when registering a graduate.
type GraduateInput struct {
	DNI   string
	Name  string
	Email string
	Phone string
}

// GraduateSession is what a graduate sees after logging in.
type GraduateSession struct {
	Graduate   *Graduate `json:"graduate"`
	Ticket     *Ticket   `json:"ticket,omitempty"`
	GuestNames []string  `json:"guest_names"`
}

// InvitationCheck is the answer to a guest presenting an invitation code.
type InvitationCheck struct {
	Valid      bool   `json:"valid"`
	GraduateID string `json:"graduate_id,omitempty"`
	Remaining  int    `json:"remaining"`
	Error      string `json:"error,omitempty"`
}

// GraduateRepository defines storage operations for graduates.
type GraduateRepository interface {
	Create(ctx context.Context, g *Graduate) error
	GetByID(ctx context.Context, id string) (*Graduate, error)
	GetByDNI(ctx context.Context, dni string) (*Graduate, error)
	GetByInvitationCode(ctx context.Context, code string) (*Graduate, error)
	List(ctx context.Context) ([]*Graduate, error)
	// DeleteUnpaid removes the graduate and their non-PAID orders only while paid is false. deleted is false when no row matched.
	DeleteUnpaid(ctx context.Context, id string) (deleted bool, err error)
}

// GraduateService defines graduate registration, login and invitation operations.
type GraduateService interface {
	// Register creates a graduate and returns the generated plaintext password.
	Register(ctx context.Context, in GraduateInput) (*Graduate, string, error)
	Authenticate(ctx context.Context, dni, password string) (*GraduateSession, error)
	ListGuestNames(ctx context.Context, graduateID string) ([]string, error)
	CheckInvitationCode(ctx context.Context, code string) (*InvitationCheck, error)
	List(ctx context.Context) ([]*Graduate, error)
	Delete(ctx context.Context, id string) error
}
