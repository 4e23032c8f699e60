package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/domain/vehicle"
	"github.com/optimrental/rental-api/internal/pkg/response"
	"github.com/optimrental/rental-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc      *Service
	hub      *Hub
	upgrader *websocket.Upgrader
}

// NewHandler creates booking handler
func NewHandler(svc *Service, hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		svc:      svc,
		hub:      hub,
		upgrader: newUpgrader(allowedOrigins),
	}
}

// Create handles POST /bookings (public intake)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			response.NotFound(w, "Vehicle not found")
		case errors.Is(err, ErrInvalidDate):
			response.BadRequest(w, "Invalid booking date, expected YYYY-MM-DD")
		default:
			log.Error().Err(err).Msg("Failed to create booking")
			response.InternalError(w, "Failed to create booking")
		}
		return
	}

	response.Created(w, map[string]interface{}{
		"success": true,
		"booking": ToResponse(b),
	})
}

// UpdateStatus handles PATCH /bookings/{id} (admin)
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.UpdateStatus(r.Context(), id, Status(req.Status))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		log.Error().Err(err).Str("booking_id", id.String()).Msg("Failed to update booking status")
		response.InternalError(w, "Failed to update booking")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"booking": ToResponse(b),
	})
}

// GetByID handles GET /bookings/{id} (admin)
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		log.Error().Err(err).Str("booking_id", id.String()).Msg("Failed to get booking")
		response.InternalError(w, "Failed to load booking")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"booking": ToResponse(b),
	})
}

// List handles GET /bookings (admin)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	var status *Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := Status(s)
		if !st.IsValid() {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		status = &st
	}

	bookings, total, err := h.svc.List(r.Context(), status, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list bookings")
		response.InternalError(w, "Failed to load bookings")
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}

	response.OK(w, map[string]interface{}{
		"success":  true,
		"bookings": items,
		"total":    total,
	})
}
