package vehicle

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/pkg/imaging"
	"github.com/optimrental/rental-api/internal/pkg/storage"
)

const (
	cacheKeyAll       = "vehicles:list:all"
	cacheKeyAvailable = "vehicles:list:available"
	cacheTTL          = 5 * time.Minute
)

// Service handles catalog business logic
type Service struct {
	repo      Repository
	cache     *redis.Client // optional, nil disables caching
	store     storage.Storage
	processor *imaging.Processor
}

// NewService creates vehicle service
func NewService(repo Repository, cache *redis.Client, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		store:     store,
		processor: processor,
	}
}

// List returns the catalog, serving from the Redis cache when possible
func (s *Service) List(ctx context.Context, onlyAvailable bool) ([]*VehicleResponse, error) {
	key := cacheKeyAll
	if onlyAvailable {
		key = cacheKeyAvailable
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var items []*VehicleResponse
			if err := json.Unmarshal(cached, &items); err == nil {
				return items, nil
			}
		}
	}

	vehicles, err := s.repo.List(ctx, onlyAvailable)
	if err != nil {
		return nil, err
	}

	items := make([]*VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		items[i] = ToResponse(v)
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Failed to cache vehicle list")
			}
		}
	}

	return items, nil
}

// GetByID returns a vehicle by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

// Create adds a vehicle to the catalog
func (s *Service) Create(ctx context.Context, req *CreateVehicleRequest) (*Vehicle, error) {
	now := time.Now()
	v := entityFromRequest(req)
	v.ID = uuid.New()
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return v, nil
}

// Update replaces a vehicle's catalog fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateVehicleRequest) (*Vehicle, error) {
	create := CreateVehicleRequest(*req)
	v := entityFromRequest(&create)
	v.ID = id

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return s.GetByID(ctx, id)
}

// Delete removes a vehicle from the catalog
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// AddImage validates, processes, and stores a gallery image, then appends
// its URL to the vehicle record. Returns the public URL of the original.
func (s *Service) AddImage(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (string, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return "", err
	}

	data, _, err := storage.ValidateFile(file, "vehicle_image", storage.MaxVehicleImageSize)
	if err != nil {
		return "", err
	}

	processed, err := s.processor.Process(bytes.NewReader(data), filename)
	if err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	ext := ".jpg"
	if processed.ContentType == "image/png" {
		ext = ".png"
	}
	base := fmt.Sprintf("vehicles/%s/%s", id, uuid.New().String())
	originalKey := base + ext
	thumbKey := base + "_thumb" + ext

	if err := s.store.Save(ctx, originalKey, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.store.Save(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %w", err)
	}

	url := s.store.GetURL(originalKey)
	if err := s.repo.AppendImage(ctx, id, url); err != nil {
		return "", err
	}

	s.invalidateCache(ctx)
	return url, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyAll, cacheKeyAvailable).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate vehicle cache")
	}
}

func entityFromRequest(req *CreateVehicleRequest) *Vehicle {
	return &Vehicle{
		Name:           req.Name,
		Description:    sql.NullString{String: req.Description, Valid: req.Description != ""},
		PricePerHour:   req.PricePerHour,
		Features:       pq.StringArray(req.Features),
		IsAvailable:    req.IsAvailable,
		Manufacturer:   sql.NullString{String: req.Manufacturer, Valid: req.Manufacturer != ""},
		Model:          sql.NullString{String: req.Model, Valid: req.Model != ""},
		Year:           sql.NullInt32{Int32: int32(req.Year), Valid: req.Year != 0},
		Transmission:   sql.NullString{String: req.Transmission, Valid: req.Transmission != ""},
		FuelType:       sql.NullString{String: req.FuelType, Valid: req.FuelType != ""},
		Width:          sql.NullFloat64{Float64: req.Width, Valid: req.Width != 0},
		Length:         sql.NullFloat64{Float64: req.Length, Valid: req.Length != 0},
		Height:         sql.NullFloat64{Float64: req.Height, Valid: req.Height != 0},
		CurbWeight:     sql.NullFloat64{Float64: req.CurbWeight, Valid: req.CurbWeight != 0},
		MaxGrossWeight: sql.NullFloat64{Float64: req.MaxGrossWeight, Valid: req.MaxGrossWeight != 0},
		EuroClass:      sql.NullString{String: req.EuroClass, Valid: req.EuroClass != ""},
		WinterReady:    req.WinterReady,
		WinterTires:    req.WinterTires,
		StuddedTires:   req.StuddedTires,
		ChildSeatSpace: req.ChildSeatSpace,
		SeatCount:      sql.NullInt32{Int32: int32(req.SeatCount), Valid: req.SeatCount != 0},
	}
}
