package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, vehicle_id, customer_name, customer_email,
			licence_no, nationality, mobile_no,
			booking_date, hours, total_price, status, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10, $11, $12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.VehicleID, b.CustomerName, b.CustomerEmail,
		b.LicenceNo, b.Nationality, b.MobileNo,
		b.BookingDate, b.Hours, b.TotalPrice, b.Status, b.CreatedAt,
	)
	return err
}

// GetByID fetches a booking joined with its vehicle's display name
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `
		SELECT b.*, v.name AS vehicle_name
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.id = $1
	`
	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	var args []interface{}
	where := ""
	argIdx := 1

	if status != nil {
		where = " WHERE b.status = $1"
		args = append(args, *status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM bookings b" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT b.*, v.name AS vehicle_name
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		%s
		ORDER BY b.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// UpdateStatus writes the status unconditionally; any status may transition
// to any other, including a no-op transition to the same value.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}
	return nil
}
