package booking

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest is the intake payload. There is deliberately no price
// field: the total is always derived server-side from the vehicle record.
type CreateBookingRequest struct {
	VehicleID     string `json:"vehicle_id" validate:"required,uuid"`
	CustomerName  string `json:"customer_name" validate:"required,min=2,max=255"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	LicenceNo     string `json:"licence_no,omitempty" validate:"omitempty,max=64"`
	Nationality   string `json:"nationality,omitempty" validate:"omitempty,max=64"`
	MobileNo      string `json:"mobile_no,omitempty" validate:"omitempty,max=32"`
	BookingDate   string `json:"booking_date" validate:"required"` // YYYY-MM-DD
	Hours         int    `json:"hours" validate:"required,gte=1,lte=720"`
}

// UpdateStatusRequest is the admin PATCH payload
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

// BookingResponse is the wire shape the frontend consumes
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	VehicleName   string    `json:"vehicle_name,omitempty"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	LicenceNo     string    `json:"licence_no,omitempty"`
	Nationality   string    `json:"nationality,omitempty"`
	MobileNo      string    `json:"mobile_no,omitempty"`
	BookingDate   string    `json:"booking_date"`
	Hours         int       `json:"hours"`
	TotalPrice    float64   `json:"total_price"`
	Status        Status    `json:"status"`
	CreatedAt     string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   b.BookingDate.Format("2006-01-02"),
		Hours:         b.Hours,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}

	if b.VehicleName.Valid {
		resp.VehicleName = b.VehicleName.String
	}
	if b.LicenceNo.Valid {
		resp.LicenceNo = b.LicenceNo.String
	}
	if b.Nationality.Valid {
		resp.Nationality = b.Nationality.String
	}
	if b.MobileNo.Valid {
		resp.MobileNo = b.MobileNo.String
	}

	return resp
}
