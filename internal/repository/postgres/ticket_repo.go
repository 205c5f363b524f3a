package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galaticketing/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{DB: db}
}

const ticketColumns = `uuid, order_id, type, inviter_id, holder_name, has_dinner, has_bar, has_bus, used_dinner, used_bar, used_bus_outbound, used_bus_return, created_at`

// usageColumns whitelists the column flipped per checkpoint.
var usageColumns = map[domain.Checkpoint]string{
	domain.CheckpointDinner:      "used_dinner",
	domain.CheckpointBar:         "used_bar",
	domain.CheckpointBusOutbound: "used_bus_outbound",
	domain.CheckpointBusReturn:   "used_bus_return",
}

func scanTicket(row interface{ Scan(...any) error }) (*domain.Ticket, error) {
	t := &domain.Ticket{}
	var typ string
	err := row.Scan(&t.UUID, &t.OrderID, &typ, &t.InviterID, &t.HolderName,
		&t.HasDinner, &t.HasBar, &t.HasBus,
		&t.UsedDinner, &t.UsedBar, &t.UsedBusOutbound, &t.UsedBusReturn,
		&t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = domain.TicketType(typ)
	return t, nil
}

func (r *ticketRepository) Issue(ctx context.Context, iss *domain.Issuance) error {
	t := iss.Ticket
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE order_id = $1 FOR UPDATE`, iss.OrderID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if domain.OrderStatus(status) == domain.OrderPaid {
		return domain.ErrOrderAlreadyProcessed
	}

	// The inviter row lock serialises concurrent issuances for the same graduate.
	var inviterPaid bool
	err = tx.QueryRowContext(ctx, `SELECT paid FROM graduates WHERE id = $1 FOR UPDATE`, t.InviterID).Scan(&inviterPaid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidTextRepresentation {
			return domain.ErrNotFound
		}
		return err
	}

	switch t.Type {
	case domain.TicketGraduate:
		if inviterPaid {
			return domain.ErrGraduatePaid
		}
		_, err = tx.ExecContext(ctx, `UPDATE graduates SET paid = TRUE, invitation_code = $2 WHERE id = $1`, t.InviterID, iss.InvitationCode)
		if err != nil {
			if pqCode(err) == pqUniqueViolation {
				return domain.ErrDuplicateInviteCode
			}
			return err
		}
	case domain.TicketGuest:
		if !inviterPaid {
			return domain.ErrInvalidCode
		}
		var guests int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE inviter_id = $1 AND type = $2`, t.InviterID, string(domain.TicketGuest)).Scan(&guests)
		if err != nil {
			return err
		}
		if guests >= domain.MaxGuestsPerGraduate {
			return domain.ErrInvitationExhausted
		}
	default:
		return fmt.Errorf("%w: unknown ticket type %q", domain.ErrInvalidInput, t.Type)
	}

	insert := `
		INSERT INTO tickets (uuid, order_id, type, inviter_id, holder_name, has_dinner, has_bar, has_bus, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(ctx, insert, t.UUID, t.OrderID, string(t.Type), t.InviterID, t.HolderName, t.HasDinner, t.HasBar, t.HasBus, t.CreatedAt)
	if err != nil {
		if pqCode(err) == pqUniqueViolation && pqConstraint(err) == "idx_tickets_one_graduate_ticket" {
			return domain.ErrGraduatePaid
		}
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE orders SET status = $2, paid_at = $3 WHERE order_id = $1`, iss.OrderID, string(domain.OrderPaid), t.CreatedAt)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ticketRepository) getOne(ctx context.Context, query string, arg any) (*domain.Ticket, error) {
	t, err := scanTicket(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidTextRepresentation {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *ticketRepository) GetByUUID(ctx context.Context, uuid string) (*domain.Ticket, error) {
	return r.getOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE uuid = $1`, uuid)
}

func (r *ticketRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Ticket, error) {
	return r.getOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE order_id = $1`, orderID)
}

func (r *ticketRepository) GetGraduateTicket(ctx context.Context, graduateID string) (*domain.Ticket, error) {
	return r.getOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE inviter_id = $1 AND type = 'GRADUATE'`, graduateID)
}

func (r *ticketRepository) CountGuests(ctx context.Context, inviterID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE inviter_id = $1 AND type = $2`, inviterID, string(domain.TicketGuest)).Scan(&n)
	if err != nil {
		if pqCode(err) == pqInvalidTextRepresentation {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return n, nil
}

func (r *ticketRepository) ListGuestNames(ctx context.Context, inviterID string) ([]string, error) {
	query := `
		SELECT holder_name
		FROM tickets
		WHERE inviter_id = $1 AND type = $2
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, inviterID, string(domain.TicketGuest))
	if err != nil {
		if pqCode(err) == pqInvalidTextRepresentation {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	defer rows.Close()
	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *ticketRepository) ListLatest(ctx context.Context, limit int) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *ticketRepository) MarkUsed(ctx context.Context, uuid string, cp domain.Checkpoint) (bool, error) {
	col, ok := usageColumns[cp]
	if !ok {
		return false, fmt.Errorf("%w: unknown checkpoint %q", domain.ErrInvalidInput, cp)
	}
	query := fmt.Sprintf(`UPDATE tickets SET %[1]s = TRUE WHERE uuid = $1 AND %[1]s = FALSE`, col)
	result, err := r.DB.ExecContext(ctx, query, uuid)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
