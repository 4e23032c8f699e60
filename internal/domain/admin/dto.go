package admin

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for POST /admin/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginResponse carries the issued token and the admin profile
type LoginResponse struct {
	Success     bool           `json:"success"`
	AccessToken string         `json:"access_token"`
	Admin       *AdminResponse `json:"admin"`
}

// AdminResponse for API responses
type AdminResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	LastLoginAt string    `json:"last_login_at,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(a *Admin) *AdminResponse {
	resp := &AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.LastLoginAt.Valid {
		resp.LastLoginAt = a.LastLoginAt.Time.Format(time.RFC3339)
	}
	return resp
}

// StatsResponse for the dashboard landing page
type StatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	VehicleCount      int     `json:"vehicle_count"`
	ConfirmedRevenue  float64 `json:"confirmed_revenue"`
}
