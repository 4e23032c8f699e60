package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines vehicle data access
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	List(ctx context.Context, onlyAvailable bool) ([]*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	AppendImage(ctx context.Context, id uuid.UUID, imageURL string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates vehicle repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, name, description, price_per_hour, image_url, images, features, is_available,
			manufacturer, model, year, transmission, fuel_type,
			width, length, height, curb_weight, max_gross_weight, euro_class,
			winter_ready, winter_tires, studded_tires, child_seat_space, seat_count,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24,
			$25, $26
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Description, v.PricePerHour, v.ImageURL, v.Images, v.Features, v.IsAvailable,
		v.Manufacturer, v.Model, v.Year, v.Transmission, v.FuelType,
		v.Width, v.Length, v.Height, v.CurbWeight, v.MaxGrossWeight, v.EuroClass,
		v.WinterReady, v.WinterTires, v.StuddedTires, v.ChildSeatSpace, v.SeatCount,
		v.CreatedAt, v.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	query := `SELECT * FROM vehicles WHERE id = $1`
	var v Vehicle
	err := r.db.GetContext(ctx, &v, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context, onlyAvailable bool) ([]*Vehicle, error) {
	query := `SELECT * FROM vehicles ORDER BY created_at DESC`
	if onlyAvailable {
		query = `SELECT * FROM vehicles WHERE is_available = true ORDER BY created_at DESC`
	}

	var vehicles []*Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *repository) Update(ctx context.Context, v *Vehicle) error {
	query := `
		UPDATE vehicles SET
			name = $2, description = $3, price_per_hour = $4, features = $5, is_available = $6,
			manufacturer = $7, model = $8, year = $9, transmission = $10, fuel_type = $11,
			width = $12, length = $13, height = $14, curb_weight = $15, max_gross_weight = $16,
			euro_class = $17, winter_ready = $18, winter_tires = $19, studded_tires = $20,
			child_seat_space = $21, seat_count = $22, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Description, v.PricePerHour, v.Features, v.IsAvailable,
		v.Manufacturer, v.Model, v.Year, v.Transmission, v.FuelType,
		v.Width, v.Length, v.Height, v.CurbWeight, v.MaxGrossWeight,
		v.EuroClass, v.WinterReady, v.WinterTires, v.StuddedTires,
		v.ChildSeatSpace, v.SeatCount,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

func (r *repository) AppendImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	query := `
		UPDATE vehicles SET
			images = array_append(COALESCE(images, '{}'), $2),
			image_url = COALESCE(NULLIF(image_url, ''), $2),
			updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, imageURL)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
