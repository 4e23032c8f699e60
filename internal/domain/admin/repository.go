package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines admin data access
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `SELECT * FROM admins WHERE email = $1`
	var a Admin
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	query := `SELECT * FROM admins WHERE id = $1`
	var a Admin
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error {
	query := `UPDATE admins SET last_login_at = NOW(), last_login_ip = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, sql.NullString{String: ip, Valid: ip != ""})
	return err
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM bookings) AS total_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending') AS pending_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'confirmed') AS confirmed_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'cancelled') AS cancelled_bookings,
			(SELECT COUNT(*) FROM vehicles) AS vehicle_count,
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = 'confirmed') AS confirmed_revenue
	`
	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
