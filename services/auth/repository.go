package auth

import (
	"context"

	"github.com/piresc/groomer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/groomer/services/auth SessionRepo

// SessionRepo persists the token and profile across restarts
type SessionRepo interface {
	SaveSession(ctx context.Context, session *models.AuthSession) error
	// LoadSession returns models.ErrSessionNotFound when nothing is stored
	LoadSession(ctx context.Context) (*models.AuthSession, error)
	ClearSession(ctx context.Context) error
}
