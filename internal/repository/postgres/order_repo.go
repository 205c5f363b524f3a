package postgres

import (
	"context"
	"database/sql"
	"errors"

	"galaticketing/internal/domain"
)

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) domain.OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `
		INSERT INTO orders (order_id, amount_cents, status, cart_type, graduate_id, guest_name, guest_email, base_price_cents, bus, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		o.OrderID, o.AmountCents, string(o.Status),
		string(o.Cart.Type), o.Cart.GraduateID, o.Cart.GuestName, o.Cart.GuestEmail, o.Cart.BasePriceCents, o.Cart.Bus,
		o.CreatedAt,
	)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			return domain.ErrOrderAlreadyProcessed
		}
		return err
	}
	return nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
		SELECT order_id, amount_cents, status, cart_type, graduate_id, guest_name, guest_email, base_price_cents, bus, created_at, paid_at
		FROM orders
		WHERE order_id = $1
	`
	o := &domain.Order{}
	var status, cartType string
	var paidAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, orderID).Scan(
		&o.OrderID, &o.AmountCents, &status,
		&cartType, &o.Cart.GraduateID, &o.Cart.GuestName, &o.Cart.GuestEmail, &o.Cart.BasePriceCents, &o.Cart.Bus,
		&o.CreatedAt, &paidAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	o.Cart.Type = domain.TicketType(cartType)
	if paidAt.Valid {
		o.PaidAt = &paidAt.Time
	}
	return o, nil
}

func (r *orderRepository) MarkFailed(ctx context.Context, orderID string) error {
	query := `UPDATE orders SET status = $2 WHERE order_id = $1 AND status = $3`
	_, err := r.DB.ExecContext(ctx, query, orderID, string(domain.OrderFailed), string(domain.OrderPending))
	return err
}
