package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the three-value booking state. Every state is reachable from
// every other in one administrator transition; none is terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is one of the three permitted statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a customer's reservation request for a vehicle
type Booking struct {
	ID            uuid.UUID      `db:"id"`
	VehicleID     uuid.UUID      `db:"vehicle_id"`
	CustomerName  string         `db:"customer_name"`
	CustomerEmail string         `db:"customer_email"`
	LicenceNo     sql.NullString `db:"licence_no"`
	Nationality   sql.NullString `db:"nationality"`
	MobileNo      sql.NullString `db:"mobile_no"`
	BookingDate   time.Time      `db:"booking_date"`
	Hours         int            `db:"hours"`
	TotalPrice    float64        `db:"total_price"`
	Status        Status         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`

	// VehicleName is populated by joined fetches only
	VehicleName sql.NullString `db:"vehicle_name"`
}
