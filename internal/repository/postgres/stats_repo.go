package postgres

import (
	"context"
	"database/sql"

	"galaticketing/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

// Collect counts in a single round trip. Paid bypass orders (TEST- prefix) are summed apart from revenue.
func (r *statsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(amount_cents), 0) FROM orders WHERE status = 'PAID' AND order_id NOT LIKE 'TEST-%'),
			(SELECT COALESCE(SUM(amount_cents), 0) FROM orders WHERE status = 'PAID' AND order_id LIKE 'TEST-%'),
			COUNT(*) FILTER (WHERE type = 'GRADUATE'),
			COUNT(*) FILTER (WHERE type = 'GUEST'),
			COUNT(*) FILTER (WHERE has_dinner AND has_bar),
			COUNT(*) FILTER (WHERE has_bar AND NOT has_dinner),
			COUNT(*) FILTER (WHERE has_bus),
			COUNT(*) FILTER (WHERE used_dinner),
			COUNT(*) FILTER (WHERE used_bar),
			COUNT(*) FILTER (WHERE used_bus_outbound),
			COUNT(*) FILTER (WHERE used_bus_return),
			(SELECT COUNT(*) FROM graduates),
			(SELECT COUNT(*) FROM graduates WHERE paid)
		FROM tickets
	`
	s := &domain.Stats{}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&s.RevenueCents, &s.BypassRevenueCents,
		&s.GraduateTickets, &s.GuestTickets,
		&s.DinnerAndBarTickets, &s.BarOnlyTickets, &s.BusTickets,
		&s.DinnerRedeemed, &s.BarRedeemed, &s.BusOutboundRedeemed, &s.BusReturnRedeemed,
		&s.RegisteredGraduates, &s.PaidGraduates,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
