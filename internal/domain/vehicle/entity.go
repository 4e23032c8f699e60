package vehicle

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vehicle represents a rentable asset in the catalog
type Vehicle struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	PricePerHour float64        `db:"price_per_hour"`
	ImageURL     sql.NullString `db:"image_url"`
	Images       pq.StringArray `db:"images"`
	Features     pq.StringArray `db:"features"`
	IsAvailable  bool           `db:"is_available"`

	// Specification attributes
	Manufacturer   sql.NullString  `db:"manufacturer"`
	Model          sql.NullString  `db:"model"`
	Year           sql.NullInt32   `db:"year"`
	Transmission   sql.NullString  `db:"transmission"`
	FuelType       sql.NullString  `db:"fuel_type"`
	Width          sql.NullFloat64 `db:"width"`
	Length         sql.NullFloat64 `db:"length"`
	Height         sql.NullFloat64 `db:"height"`
	CurbWeight     sql.NullFloat64 `db:"curb_weight"`
	MaxGrossWeight sql.NullFloat64 `db:"max_gross_weight"`
	EuroClass      sql.NullString  `db:"euro_class"`
	WinterReady    bool            `db:"winter_ready"`
	WinterTires    bool            `db:"winter_tires"`
	StuddedTires   bool            `db:"studded_tires"`
	ChildSeatSpace bool            `db:"child_seat_space"`
	SeatCount      sql.NullInt32   `db:"seat_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
