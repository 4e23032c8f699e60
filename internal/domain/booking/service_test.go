package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/optimrental/rental-api/internal/domain/vehicle"
	"github.com/optimrental/rental-api/internal/pkg/email"
)

type fakeRepo struct {
	bookings map[uuid.UUID]*Booking
	created  []*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[uuid.UUID]*Booking)}
}

func (f *fakeRepo) Create(ctx context.Context, b *Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context, status *Status, limit, offset int) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if status != nil && b.Status != *status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*vehicle.Vehicle
}

func newFakeVehicleRepo(vehicles ...*vehicle.Vehicle) *fakeVehicleRepo {
	f := &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*vehicle.Vehicle)}
	for _, v := range vehicles {
		f.vehicles[v.ID] = v
	}
	return f
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *vehicle.Vehicle) error { return nil }

func (f *fakeVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeVehicleRepo) List(ctx context.Context, onlyAvailable bool) ([]*vehicle.Vehicle, error) {
	return nil, nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, v *vehicle.Vehicle) error { return nil }
func (f *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeVehicleRepo) AppendImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return nil
}

type sentMail struct {
	kind    email.Kind
	to      string
	details email.Details
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendBookingReceived(ctx context.Context, to, toName string, d email.Details) error {
	f.sent = append(f.sent, sentMail{kind: email.KindBookingReceived, to: to, details: d})
	return f.err
}

func (f *fakeMailer) SendBookingConfirmed(ctx context.Context, to, toName string, d email.Details) error {
	f.sent = append(f.sent, sentMail{kind: email.KindBookingConfirmed, to: to, details: d})
	return f.err
}

func testVehicle(pricePerHour float64) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:           uuid.New(),
		Name:         "BMW X5",
		PricePerHour: pricePerHour,
		IsAvailable:  true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestCreateComputesTotalPriceServerSide(t *testing.T) {
	v := testVehicle(45.50)
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	svc := NewService(repo, newFakeVehicleRepo(v), mailer, nil)

	b, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     v.ID.String(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         6,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if want := 45.50 * 6; b.TotalPrice != want {
		t.Errorf("TotalPrice = %v, want %v", b.TotalPrice, want)
	}
	if b.Status != StatusPending {
		t.Errorf("Status = %q, want %q", b.Status, StatusPending)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.created))
	}
	if repo.created[0].TotalPrice != 45.50*6 {
		t.Errorf("persisted TotalPrice = %v, want %v", repo.created[0].TotalPrice, 45.50*6)
	}
}

func TestCreateUnknownVehicle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeVehicleRepo(), &fakeMailer{}, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     uuid.NewString(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         6,
	})
	if !errors.Is(err, vehicle.ErrVehicleNotFound) {
		t.Fatalf("err = %v, want ErrVehicleNotFound", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("booking was persisted despite unknown vehicle")
	}
}

func TestCreateMalformedVehicleID(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(), &fakeMailer{}, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     "not-a-uuid",
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         6,
	})
	if !errors.Is(err, vehicle.ErrVehicleNotFound) {
		t.Fatalf("err = %v, want ErrVehicleNotFound", err)
	}
}

func TestCreateInvalidDate(t *testing.T) {
	v := testVehicle(30)
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(v), &fakeMailer{}, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     v.ID.String(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "14.03.2026",
		Hours:         6,
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestCreateSendsReceivedEmail(t *testing.T) {
	v := testVehicle(30)
	mailer := &fakeMailer{}
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(v), mailer, nil)

	_, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     v.ID.String(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         4,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(mailer.sent))
	}
	got := mailer.sent[0]
	if got.kind != email.KindBookingReceived {
		t.Errorf("kind = %q, want %q", got.kind, email.KindBookingReceived)
	}
	if got.to != "anna@example.com" {
		t.Errorf("to = %q, want customer email", got.to)
	}
	if got.details.VehicleName != "BMW X5" {
		t.Errorf("VehicleName = %q, want %q", got.details.VehicleName, "BMW X5")
	}
	if got.details.TotalPrice != 120 {
		t.Errorf("TotalPrice = %v, want 120", got.details.TotalPrice)
	}
}

func TestCreateSucceedsWhenEmailFails(t *testing.T) {
	v := testVehicle(30)
	repo := newFakeRepo()
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(repo, newFakeVehicleRepo(v), mailer, nil)

	b, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     v.ID.String(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         2,
	})
	if err != nil {
		t.Fatalf("Create failed because of the email: %v", err)
	}
	if b.Status != StatusPending {
		t.Errorf("Status = %q, want %q", b.Status, StatusPending)
	}
}

func TestCreateWithoutMailer(t *testing.T) {
	v := testVehicle(30)
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(v), nil, nil)

	if _, err := svc.Create(context.Background(), &CreateBookingRequest{
		VehicleID:     v.ID.String(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   "2026-03-14",
		Hours:         2,
	}); err != nil {
		t.Fatalf("Create returned error with nil mailer: %v", err)
	}
}

func seedBooking(repo *fakeRepo, v *vehicle.Vehicle, status Status) *Booking {
	b := &Booking{
		ID:            uuid.New(),
		VehicleID:     v.ID,
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Hours:         6,
		TotalPrice:    180,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	b.VehicleName.String = v.Name
	b.VehicleName.Valid = true
	repo.bookings[b.ID] = b
	return b
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name      string
		from      Status
		to        Status
		wantEmail bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, true},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVehicle(30)
			repo := newFakeRepo()
			mailer := &fakeMailer{}
			svc := NewService(repo, newFakeVehicleRepo(v), mailer, nil)

			b := seedBooking(repo, v, tt.from)

			updated, err := svc.UpdateStatus(context.Background(), b.ID, tt.to)
			if err != nil {
				t.Fatalf("UpdateStatus returned error: %v", err)
			}
			if updated.Status != tt.to {
				t.Errorf("Status = %q, want %q", updated.Status, tt.to)
			}

			if tt.wantEmail {
				if len(mailer.sent) != 1 || mailer.sent[0].kind != email.KindBookingConfirmed {
					t.Errorf("expected one confirmation email, got %+v", mailer.sent)
				}
			} else if len(mailer.sent) != 0 {
				t.Errorf("expected no email, got %+v", mailer.sent)
			}
		})
	}
}

func TestUpdateStatusSucceedsWhenEmailFails(t *testing.T) {
	v := testVehicle(30)
	repo := newFakeRepo()
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(repo, newFakeVehicleRepo(v), mailer, nil)

	b := seedBooking(repo, v, StatusPending)

	updated, err := svc.UpdateStatus(context.Background(), b.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed because of the email: %v", err)
	}
	if updated.Status != StatusConfirmed {
		t.Errorf("Status = %q, want %q", updated.Status, StatusConfirmed)
	}
	if len(mailer.sent) != 1 {
		t.Errorf("expected the confirmation send to be attempted, got %d", len(mailer.sent))
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(), &fakeMailer{}, nil)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), StatusConfirmed)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeVehicleRepo(), nil, nil)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}
