package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/optimrental/rental-api/internal/pkg/password"
)

// Service handles admin business logic
type Service struct {
	repo Repository
}

// NewService creates admin service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login verifies credentials and records the login. Returns
// ErrInvalidCredentials for both unknown emails and wrong passwords.
func (s *Service) Login(ctx context.Context, email, pass, ip string) (*Admin, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(pass, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !a.IsActive {
		return nil, ErrAdminInactive
	}

	if err := s.repo.UpdateLastLogin(ctx, a.ID, ip); err != nil {
		log.Warn().Err(err).Str("admin_id", a.ID.String()).Msg("Failed to record admin login")
	}

	return a, nil
}

// GetByID loads an admin profile
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAdminNotFound
	}
	return a, nil
}

// Stats returns dashboard counters
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
