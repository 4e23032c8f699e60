package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/domain/vehicle"
	"github.com/optimrental/rental-api/internal/pkg/email"
)

// Service handles the booking intake and status workflows
type Service struct {
	repo     Repository
	vehicles vehicle.Repository
	mailer   email.Sender // nil disables notifications entirely
	hub      *Hub         // nil disables the admin live feed
}

// NewService creates booking service
func NewService(repo Repository, vehicles vehicle.Repository, mailer email.Sender, hub *Hub) *Service {
	return &Service{
		repo:     repo,
		vehicles: vehicles,
		mailer:   mailer,
		hub:      hub,
	}
}

// Create persists a pending booking. The total price is derived from the
// vehicle's current price_per_hour; anything the client claims about price
// never enters this path. The "booking received" email is advisory: its
// failure is logged and the booking still succeeds.
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, vehicle.ErrVehicleNotFound
	}

	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, vehicle.ErrVehicleNotFound
	}

	b := &Booking{
		ID:            uuid.New(),
		VehicleID:     v.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		LicenceNo:     sql.NullString{String: req.LicenceNo, Valid: req.LicenceNo != ""},
		Nationality:   sql.NullString{String: req.Nationality, Valid: req.Nationality != ""},
		MobileNo:      sql.NullString{String: req.MobileNo, Valid: req.MobileNo != ""},
		BookingDate:   bookingDate,
		Hours:         req.Hours,
		TotalPrice:    v.PricePerHour * float64(req.Hours),
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	b.VehicleName = sql.NullString{String: v.Name, Valid: true}

	s.notify(ctx, email.KindBookingReceived, b)
	if s.hub != nil {
		s.hub.Broadcast(EventBookingCreated, ToResponse(b))
	}

	return b, nil
}

// UpdateStatus writes the requested status and returns the updated booking
// joined with its vehicle's name. When the new status is "confirmed" the
// customer is notified; the email is advisory and never fails the update.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Booking, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if status == StatusConfirmed {
		s.notify(ctx, email.KindBookingConfirmed, b)
	}
	if s.hub != nil {
		s.hub.Broadcast(EventBookingStatusChanged, ToResponse(b))
	}

	return b, nil
}

// GetByID returns a booking joined with its vehicle name
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// List returns bookings with an optional status filter, newest first
func (s *Service) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) notify(ctx context.Context, kind email.Kind, b *Booking) {
	if s.mailer == nil {
		return
	}

	details := email.Details{
		VehicleName: b.VehicleName.String,
		Date:        b.BookingDate.Format("2006-01-02"),
		Hours:       b.Hours,
		TotalPrice:  b.TotalPrice,
	}

	var err error
	switch kind {
	case email.KindBookingConfirmed:
		err = s.mailer.SendBookingConfirmed(ctx, b.CustomerEmail, b.CustomerName, details)
	default:
		err = s.mailer.SendBookingReceived(ctx, b.CustomerEmail, b.CustomerName, details)
	}

	if err != nil {
		log.Error().
			Err(err).
			Str("booking_id", b.ID.String()).
			Str("kind", string(kind)).
			Msg("Failed to send booking notification")
	}
}
