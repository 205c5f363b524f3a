package domain

import "context"

// Stats aggregates sales and redemption counters for the admin dashboard.
// swagger:model Stats
type Stats struct {
	RevenueCents        int64   `json:"revenue_cents"`
	Revenue             float64 `json:"revenue"`
	BypassRevenueCents  int64   `json:"bypass_revenue_cents"`
	GraduateTickets     int     `json:"graduate_tickets"`
	GuestTickets        int     `json:"guest_tickets"`
	TotalAttendees      int     `json:"total_attendees"`
	DinnerAndBarTickets int     `json:"dinner_and_bar_tickets"`
	BarOnlyTickets      int     `json:"bar_only_tickets"`
	BusTickets          int     `json:"bus_tickets"`
	RegisteredGraduates int     `json:"registered_graduates"`
	PaidGraduates       int     `json:"paid_graduates"`
	DinnerRedeemed      int     `json:"dinner_redeemed"`
	BarRedeemed         int     `json:"bar_redeemed"`
	BusOutboundRedeemed int     `json:"bus_outbound_redeemed"`
	BusReturnRedeemed   int     `json:"bus_return_redeemed"`
}

// StatsRepository computes the raw counters.
type StatsRepository interface {
	Collect(ctx context.Context) (*Stats, error)
}

// StatsService exposes dashboard statistics.
type StatsService interface {
	Get(ctx context.Context) (*Stats, error)
}
