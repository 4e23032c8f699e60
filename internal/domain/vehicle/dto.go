package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// CreateVehicleRequest for adding a vehicle to the catalog
type CreateVehicleRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Description  string   `json:"description,omitempty"`
	PricePerHour float64  `json:"price_per_hour" validate:"gte=0"`
	Features     []string `json:"features,omitempty"`
	IsAvailable  bool     `json:"is_available"`

	Manufacturer   string  `json:"manufacturer,omitempty"`
	Model          string  `json:"model,omitempty"`
	Year           int     `json:"year,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	Transmission   string  `json:"transmission,omitempty" validate:"transmission"`
	FuelType       string  `json:"fuel_type,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Length         float64 `json:"length,omitempty"`
	Height         float64 `json:"height,omitempty"`
	CurbWeight     float64 `json:"curb_weight,omitempty"`
	MaxGrossWeight float64 `json:"max_gross_weight,omitempty"`
	EuroClass      string  `json:"euro_class,omitempty"`
	WinterReady    bool    `json:"winter_ready,omitempty"`
	WinterTires    bool    `json:"winter_tires,omitempty"`
	StuddedTires   bool    `json:"studded_tires,omitempty"`
	ChildSeatSpace bool    `json:"child_seat_space,omitempty"`
	SeatCount      int     `json:"seat_count,omitempty" validate:"omitempty,gte=1,lte=20"`
}

// UpdateVehicleRequest mirrors the create payload; updates replace the row
type UpdateVehicleRequest CreateVehicleRequest

// VehicleResponse is the catalog shape the frontend consumes
type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	PricePerHour float64   `json:"price_per_hour"`
	ImageURL     string    `json:"image_url,omitempty"`
	Images       []string  `json:"images,omitempty"`
	Features     []string  `json:"features,omitempty"`
	IsAvailable  bool      `json:"is_available"`

	Manufacturer   string  `json:"manufacturer,omitempty"`
	Model          string  `json:"model,omitempty"`
	Year           int     `json:"year,omitempty"`
	Transmission   string  `json:"transmission,omitempty"`
	FuelType       string  `json:"fuel_type,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Length         float64 `json:"length,omitempty"`
	Height         float64 `json:"height,omitempty"`
	CurbWeight     float64 `json:"curb_weight,omitempty"`
	MaxGrossWeight float64 `json:"max_gross_weight,omitempty"`
	EuroClass      string  `json:"euro_class,omitempty"`
	WinterReady    bool    `json:"winter_ready,omitempty"`
	WinterTires    bool    `json:"winter_tires,omitempty"`
	StuddedTires   bool    `json:"studded_tires,omitempty"`
	ChildSeatSpace bool    `json:"child_seat_space,omitempty"`
	SeatCount      int     `json:"seat_count,omitempty"`

	CreatedAt string `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(v *Vehicle) *VehicleResponse {
	resp := &VehicleResponse{
		ID:             v.ID,
		Name:           v.Name,
		PricePerHour:   v.PricePerHour,
		Images:         []string(v.Images),
		Features:       []string(v.Features),
		IsAvailable:    v.IsAvailable,
		WinterReady:    v.WinterReady,
		WinterTires:    v.WinterTires,
		StuddedTires:   v.StuddedTires,
		ChildSeatSpace: v.ChildSeatSpace,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}

	if v.Description.Valid {
		resp.Description = v.Description.String
	}
	if v.ImageURL.Valid {
		resp.ImageURL = v.ImageURL.String
	}
	if v.Manufacturer.Valid {
		resp.Manufacturer = v.Manufacturer.String
	}
	if v.Model.Valid {
		resp.Model = v.Model.String
	}
	if v.Year.Valid {
		resp.Year = int(v.Year.Int32)
	}
	if v.Transmission.Valid {
		resp.Transmission = v.Transmission.String
	}
	if v.FuelType.Valid {
		resp.FuelType = v.FuelType.String
	}
	if v.Width.Valid {
		resp.Width = v.Width.Float64
	}
	if v.Length.Valid {
		resp.Length = v.Length.Float64
	}
	if v.Height.Valid {
		resp.Height = v.Height.Float64
	}
	if v.CurbWeight.Valid {
		resp.CurbWeight = v.CurbWeight.Float64
	}
	if v.MaxGrossWeight.Valid {
		resp.MaxGrossWeight = v.MaxGrossWeight.Float64
	}
	if v.EuroClass.Valid {
		resp.EuroClass = v.EuroClass.String
	}
	if v.SeatCount.Valid {
		resp.SeatCount = int(v.SeatCount.Int32)
	}

	return resp
}
