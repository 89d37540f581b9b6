package repositories

import (
	"context"

	"designvault/internal/domain/models"

	"github.com/google/uuid"
)

// UserProfileRepository stores the per-user gamification profile
type UserProfileRepository interface {
	// GetByUserID retrieves the profile for a user
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// Upsert creates or replaces the profile row for a user
	Upsert(ctx context.Context, profile *models.UserProfile) error
}
