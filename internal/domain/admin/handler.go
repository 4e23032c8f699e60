package admin

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/middleware"
	"github.com/optimrental/rental-api/internal/pkg/jwt"
	"github.com/optimrental/rental-api/internal/pkg/response"
	"github.com/optimrental/rental-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	svc *Service
	jwt *jwt.Service
}

// NewHandler creates admin handler
func NewHandler(svc *Service, jwtService *jwt.Service) *Handler {
	return &Handler{svc: svc, jwt: jwtService}
}

// Login handles POST /admin/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	a, err := h.svc.Login(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrAdminInactive):
			response.Forbidden(w, "Account is inactive")
		default:
			log.Error().Err(err).Msg("Admin login failed")
			response.InternalError(w, "Login failed")
		}
		return
	}

	token, err := h.jwt.GenerateToken(a.ID, a.Email)
	if err != nil {
		log.Error().Err(err).Msg("Failed to issue admin token")
		response.InternalError(w, "Login failed")
		return
	}

	response.OK(w, LoginResponse{
		Success:     true,
		AccessToken: token,
		Admin:       ToResponse(a),
	})
}

// Me handles GET /admin/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetAdminID(r.Context())

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			response.NotFound(w, "Admin not found")
			return
		}
		log.Error().Err(err).Msg("Failed to load admin profile")
		response.InternalError(w, "Failed to load profile")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"admin":   ToResponse(a),
	})
}

// Stats handles GET /admin/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load dashboard stats")
		response.InternalError(w, "Failed to load stats")
		return
	}

	response.OK(w, map[string]interface{}{
		"success": true,
		"stats": StatsResponse{
			TotalBookings:     stats.TotalBookings,
			PendingBookings:   stats.PendingBookings,
			ConfirmedBookings: stats.ConfirmedBookings,
			CancelledBookings: stats.CancelledBookings,
			VehicleCount:      stats.VehicleCount,
			ConfirmedRevenue:  stats.ConfirmedRevenue,
		},
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
