package vehicle

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/pkg/response"
	"github.com/optimrental/rental-api/internal/pkg/storage"
	"github.com/optimrental/rental-api/internal/pkg/validator"
)

// Handler handles vehicle HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates vehicle handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /vehicles (public)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"

	items, err := h.svc.List(r.Context(), onlyAvailable)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list vehicles")
		response.InternalError(w, "Failed to load vehicles")
		return
	}

	response.OK(w, map[string]interface{}{
		"success":  true,
		"vehicles": items,
	})
}

// GetByID handles GET /vehicles/{id} (public)
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	v, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			response.NotFound(w, "Vehicle not found")
			return
		}
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("Failed to get vehicle")
		response.InternalError(w, "Failed to load vehicle")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"vehicle": ToResponse(v),
	})
}

// Create handles POST /vehicles (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create vehicle")
		response.InternalError(w, "Failed to create vehicle")
		return
	}

	response.Created(w, map[string]interface{}{
		"success": true,
		"vehicle": ToResponse(v),
	})
}

// Update handles PUT /vehicles/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.svc.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			response.NotFound(w, "Vehicle not found")
			return
		}
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("Failed to update vehicle")
		response.InternalError(w, "Failed to update vehicle")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"vehicle": ToResponse(v),
	})
}

// Delete handles DELETE /vehicles/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			response.NotFound(w, "Vehicle not found")
			return
		}
		log.Error().Err(err).Str("vehicle_id", id.String()).Msg("Failed to delete vehicle")
		response.InternalError(w, "Failed to delete vehicle")
		return
	}

	response.NoContent(w)
}

// UploadImage handles POST /vehicles/{id}/images (admin, multipart)
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	if err := r.ParseMultipartForm(storage.MaxVehicleImageSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.BadRequest(w, "Missing image file")
		return
	}
	defer file.Close()

	url, err := h.svc.AddImage(r.Context(), id, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrVehicleNotFound):
			response.NotFound(w, "Vehicle not found")
		case errors.Is(err, storage.ErrFileTooLarge):
			response.BadRequest(w, "Image exceeds maximum size")
		case errors.Is(err, storage.ErrInvalidMimeType):
			response.BadRequest(w, "Image must be JPEG or PNG")
		case errors.Is(err, storage.ErrEmptyFile):
			response.BadRequest(w, "Image file is empty")
		default:
			log.Error().Err(err).Str("vehicle_id", id.String()).Msg("Failed to upload vehicle image")
			response.InternalError(w, "Failed to upload image")
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"success": true,
		"url":     url,
	})
}
