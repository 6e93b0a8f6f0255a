package diagnostics

import (
	"context"

	"insightflow-api/core/database"

	"go.uber.org/zap"
)

// Service answers the diagnostic probes.
type Service struct {
	users  database.UserRepository
	logger *zap.Logger
}

// NewService creates a new diagnostics service.
func NewService(users database.UserRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, logger: logger}
}

// ListUsers returns every stored user.
func (s *Service) ListUsers(ctx context.Context) ([]database.User, error) {
	if s.users == nil {
		return nil, database.ErrNoConnection
	}
	return s.users.FindAll(ctx)
}

// Health returns the static liveness payload.
func (s *Service) Health() HealthResponse {
	return healthy
}
