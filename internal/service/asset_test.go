package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
)

func TestAssetIngest(t *testing.T) {
	repo := &fakeAssetRepo{}
	svc := NewAssetService(repo, testLogger())

	asset, err := svc.Ingest(context.Background(), &models.IngestAssetRequest{
		URL: "https://cdn.example/door.jpg",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "image", asset.Kind, "kind defaults to image")
	assert.Len(t, repo.assets, 1)
}

func TestAssetIngestRequiresURL(t *testing.T) {
	svc := NewAssetService(&fakeAssetRepo{}, testLogger())

	_, err := svc.Ingest(context.Background(), &models.IngestAssetRequest{Kind: "image"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
