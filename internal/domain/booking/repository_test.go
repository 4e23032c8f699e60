package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	b := &Booking{
		ID:            uuid.New(),
		VehicleID:     uuid.New(),
		CustomerName:  "Anna Keller",
		CustomerEmail: "anna@example.com",
		BookingDate:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Hours:         6,
		TotalPrice:    270,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepositoryGetByIDJoinsVehicleName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	vehicleID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "vehicle_id", "customer_name", "customer_email",
		"licence_no", "nationality", "mobile_no",
		"booking_date", "hours", "total_price", "status", "created_at",
		"vehicle_name",
	}).AddRow(
		id, vehicleID, "Anna Keller", "anna@example.com",
		nil, nil, nil,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 6, 270.0, "pending", now,
		"BMW X5",
	)

	mock.ExpectQuery("SELECT b\\.\\*, v\\.name AS vehicle_name").
		WithArgs(id).
		WillReturnRows(rows)

	b, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if b == nil {
		t.Fatal("GetByID returned nil booking")
	}
	if !b.VehicleName.Valid || b.VehicleName.String != "BMW X5" {
		t.Errorf("VehicleName = %+v, want joined BMW X5", b.VehicleName)
	}
	if b.Status != StatusPending {
		t.Errorf("Status = %q, want pending", b.Status)
	}
}

func TestRepositoryGetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT b\\.\\*, v\\.name AS vehicle_name").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	b, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if b != nil {
		t.Errorf("expected nil booking for missing row, got %+v", b)
	}
}

func TestRepositoryUpdateStatusMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(id, StatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), id, StatusConfirmed)
	if err != ErrBookingNotFound {
		t.Fatalf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestRepositoryListWithStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	status := StatusPending

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings b").
		WithArgs(status).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := sqlmock.NewRows([]string{
		"id", "vehicle_id", "customer_name", "customer_email",
		"licence_no", "nationality", "mobile_no",
		"booking_date", "hours", "total_price", "status", "created_at",
		"vehicle_name",
	}).AddRow(
		uuid.New(), uuid.New(), "Anna Keller", "anna@example.com",
		nil, nil, nil,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 6, 270.0, "pending", time.Now(),
		"BMW X5",
	)

	mock.ExpectQuery("SELECT b\\.\\*, v\\.name AS vehicle_name").
		WithArgs(status, 50, 0).
		WillReturnRows(rows)

	bookings, total, err := repo.List(context.Background(), &status, 50, 0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if len(bookings) != 1 {
		t.Fatalf("len(bookings) = %d, want 1", len(bookings))
	}
}
