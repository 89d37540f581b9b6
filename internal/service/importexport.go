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

// ImportExportService serializes the item collection to a versioned
// bundle and replaces it from one. Import is a destructive full
// replace, not a merge: items absent from the bundle are lost.
type ImportExportService struct {
	itemRepo  repositories.ItemRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewImportExportService creates a new import/export service
func NewImportExportService(
	itemRepo repositories.ItemRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *ImportExportService {
	return &ImportExportService{
		itemRepo:  itemRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Export returns the full current item list wrapped in a versioned
// bundle. Read-only.
func (s *ImportExportService) Export(ctx context.Context) (*models.ExportBundle, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ExportBundle{
		Version: models.ExportVersion,
		Items:   items,
	}, nil
}

// Import replaces the entire item collection with the bundle's items.
// Every incoming record gets a fresh id and fresh timestamps; caller
// supplied ids and timestamps are discarded. The bundle version is
// accepted but not branched on.
func (s *ImportExportService) Import(ctx context.Context, bundle *models.ExportBundle) (int, error) {
	if bundle == nil || bundle.Items == nil {
		return 0, &domain.ValidationError{Message: "Invalid import format"}
	}

	now := time.Now().UTC()
	incoming := make([]models.Item, 0, len(bundle.Items))
	for _, item := range bundle.Items {
		item.ID = uuid.NewString()
		item.CreatedAt = now
		item.UpdatedAt = now
		item.Currency = defaultCurrency(item.Currency)
		item.Dimensions = emptyIfNilMap(item.Dimensions)
		item.Attributes = emptyIfNilMap(item.Attributes)
		item.Categories = emptyIfNilSlice(item.Categories)
		item.Tags = emptyIfNilSlice(item.Tags)
		item.Assets = withAssetIDs(item.Assets)
		incoming = append(incoming, item)
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.itemRepo.DeleteAll(txCtx); err != nil {
			return err
		}
		for i := range incoming {
			if err := s.itemRepo.Create(txCtx, &incoming[i]); err != nil {
				return fmt.Errorf("import item %q: %w", incoming[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("items imported",
		"count", len(incoming),
		"version", bundle.Version,
	)

	return len(incoming), nil
}
