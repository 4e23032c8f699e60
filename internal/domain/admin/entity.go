package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Admin represents a dashboard administrator account
type Admin struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	IsActive     bool           `db:"is_active"`
	LastLoginAt  sql.NullTime   `db:"last_login_at"`
	LastLoginIP  sql.NullString `db:"last_login_ip"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// Stats holds the dashboard counters
type Stats struct {
	TotalBookings     int     `db:"total_bookings"`
	PendingBookings   int     `db:"pending_bookings"`
	ConfirmedBookings int     `db:"confirmed_bookings"`
	CancelledBookings int     `db:"cancelled_bookings"`
	VehicleCount      int     `db:"vehicle_count"`
	ConfirmedRevenue  float64 `db:"confirmed_revenue"`
}
