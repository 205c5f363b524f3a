package postgres

import (
	"context"
	"database/sql"
	"errors"

	"galaticketing/internal/domain"
)

type graduateRepository struct {
	DB *sql.DB
}

func NewGraduateRepository(db *sql.DB) domain.GraduateRepository {
	return &graduateRepository{DB: db}
}

const graduateColumns = `id, dni, name, email, phone, password_hash, salt, paid, invitation_code, created_at`

func scanGraduate(row interface{ Scan(...any) error }) (*domain.Graduate, error) {
	g := &domain.Graduate{}
	var code sql.NullString
	if err := row.Scan(&g.ID, &g.DNI, &g.Name, &g.Email, &g.Phone, &g.PasswordHash, &g.Salt, &g.Paid, &code, &g.CreatedAt); err != nil {
		return nil, err
	}
	if code.Valid {
		g.InvitationCode = &code.String
	}
	return g, nil
}

func (r *graduateRepository) Create(ctx context.Context, g *domain.Graduate) error {
	query := `
		INSERT INTO graduates (dni, name, email, phone, password_hash, salt, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.DNI, g.Name, g.Email, g.Phone, g.PasswordHash, g.Salt, g.Paid, g.CreatedAt).Scan(&g.ID)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			return domain.ErrDuplicateDNI
		}
		return err
	}
	return nil
}

func (r *graduateRepository) getOne(ctx context.Context, where string, arg any) (*domain.Graduate, error) {
	query := `SELECT ` + graduateColumns + ` FROM graduates WHERE ` + where
	g, err := scanGraduate(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidTextRepresentation {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *graduateRepository) GetByID(ctx context.Context, id string) (*domain.Graduate, error) {
	return r.getOne(ctx, `id = $1`, id)
}

func (r *graduateRepository) GetByDNI(ctx context.Context, dni string) (*domain.Graduate, error) {
	return r.getOne(ctx, `dni = $1`, dni)
}

func (r *graduateRepository) GetByInvitationCode(ctx context.Context, code string) (*domain.Graduate, error) {
	return r.getOne(ctx, `invitation_code = $1`, code)
}

func (r *graduateRepository) List(ctx context.Context) ([]*domain.Graduate, error) {
	query := `SELECT ` + graduateColumns + ` FROM graduates ORDER BY name, dni`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	graduates := make([]*domain.Graduate, 0)
	for rows.Next() {
		g, err := scanGraduate(rows)
		if err != nil {
			return nil, err
		}
		graduates = append(graduates, g)
	}
	return graduates, rows.Err()
}

// DeleteUnpaid removes an unpaid graduate together with their non-PAID orders, which hold a
// foreign key to the graduate. A remaining PAID order maps to domain.ErrGraduatePaid.
func (r *graduateRepository) DeleteUnpaid(ctx context.Context, id string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var paid bool
	err = tx.QueryRowContext(ctx, `SELECT paid FROM graduates WHERE id = $1 FOR UPDATE`, id).Scan(&paid)
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidTextRepresentation {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if paid {
		return false, nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE graduate_id = $1 AND status <> $2`, id, domain.OrderPaid); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM graduates WHERE id = $1`, id); err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return false, domain.ErrGraduatePaid
		}
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
