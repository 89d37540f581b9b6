package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designvault/internal/domain/models"
)

func TestProfileGetDefaults(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{}, testLogger())
	userID := uuid.New()

	// No stored row: defaults, not an error
	profile, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), profile.UserID)
	assert.Equal(t, 0, profile.Coins)
	assert.Equal(t, "light", profile.Theme)
	assert.Empty(t, profile.Collectibles)
}

func TestProfileUpdateCreatesRowLazily(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, testLogger())
	userID := uuid.New()

	coins := 25
	profile, err := svc.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Coins: &coins,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, profile.Coins)
	assert.Equal(t, "light", profile.Theme, "unset theme reads as default")
	assert.Len(t, repo.profiles, 1)
}

func TestProfileUpdatePartial(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, testLogger())
	userID := uuid.New()

	coins := 10
	theme := "dark"
	_, err := svc.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Coins:        &coins,
		Theme:        &theme,
		Collectibles: &[]string{"badge-1"},
	})
	require.NoError(t, err)

	// Only coins in the second patch; theme and collectibles survive
	coins = 42
	profile, err := svc.Update(context.Background(), userID, &models.UpdateProfileRequest{
		Coins: &coins,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, profile.Coins)
	assert.Equal(t, "dark", profile.Theme)
	assert.Equal(t, []string{"badge-1"}, profile.Collectibles)
}
