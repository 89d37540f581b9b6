package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// AssetService records metadata for externally-uploaded assets. The
// binary itself never passes through this server; clients upload to the
// object store directly and register the resulting URL here.
type AssetService struct {
	assetRepo repositories.LooseAssetRepository
	logger    *slog.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo repositories.LooseAssetRepository, logger *slog.Logger) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

// Ingest stores asset metadata and returns the record with its assigned
// id. Items later embed their own copy of this metadata.
func (s *AssetService) Ingest(ctx context.Context, req *models.IngestAssetRequest) (*models.LooseAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	kind := req.Kind
	if kind == "" {
		kind = "image"
	}

	asset := &models.LooseAsset{
		ID:        uuid.NewString(),
		Kind:      kind,
		URL:       req.URL,
		Alt:       req.Alt,
		Width:     req.Width,
		Height:    req.Height,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.logger.Info("asset ingested", "id", asset.ID, "kind", asset.Kind)

	return asset, nil
}

// List returns all ingested assets
func (s *AssetService) List(ctx context.Context) ([]models.LooseAsset, error) {
	return s.assetRepo.ListAll(ctx)
}
