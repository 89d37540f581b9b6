package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// PostgresUserProfileRepository implements the UserProfileRepository interface
type PostgresUserProfileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(config *RepositoryConfig) repositories.UserProfileRepository {
	return &PostgresUserProfileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByUserID retrieves the profile for a user
func (r *PostgresUserProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := fmt.Sprintf(`
		SELECT user_id, profile, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.UserProfiles)

	var profile models.UserProfile
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Profile,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("profile for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// Upsert creates or replaces the profile row for a user
func (r *PostgresUserProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET profile = EXCLUDED.profile, updated_at = EXCLUDED.updated_at
	`, r.tables.UserProfiles)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		profile.UserID,
		profile.Profile,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
