package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// ProfileService manages the per-user gamification profile. A user with
// no stored row reads as the default profile (zero coins, light theme,
// no collectibles); the row is created lazily on first write.
type ProfileService struct {
	profileRepo repositories.UserProfileRepository
	logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.UserProfileRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Get returns the user's profile, falling back to defaults when no row
// exists yet.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			profile = &models.UserProfile{UserID: userID, Profile: models.JSONMap{}}
		} else {
			return nil, err
		}
	}

	return flattenProfile(profile)
}

// Update applies a partial update to the profile and returns the new
// flattened view. Absent fields keep their stored values.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		now := time.Now().UTC()
		profile = &models.UserProfile{
			UserID:    userID,
			Profile:   models.JSONMap{},
			CreatedAt: now,
		}
	}

	if req.Coins != nil {
		profile.SetCoins(*req.Coins)
	}
	if req.Theme != nil {
		profile.SetTheme(*req.Theme)
	}
	if req.Collectibles != nil {
		profile.SetCollectibles(*req.Collectibles)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)

	return flattenProfile(profile)
}

func flattenProfile(profile *models.UserProfile) (*models.ProfileResponse, error) {
	collectibles, err := profile.GetCollectibles()
	if err != nil {
		return nil, err
	}
	return &models.ProfileResponse{
		UserID:       profile.UserID.String(),
		Coins:        profile.GetCoins(),
		Theme:        profile.GetTheme(),
		Collectibles: collectibles,
		UpdatedAt:    profile.UpdatedAt,
	}, nil
}
