package repositories

import (
	"context"

	"designvault/internal/domain/models"
)

// ItemRepository defines data access operations for catalogue items
type ItemRepository interface {
	// Create inserts a new item
	Create(ctx context.Context, item *models.Item) error

	// GetByID retrieves an item by ID
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// Update persists the full item record (the service computes the merge)
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item unconditionally
	Delete(ctx context.Context, id string) error

	// ListAll retrieves all items in creation order
	ListAll(ctx context.Context) ([]models.Item, error)

	// DeleteAll clears the item collection (full-replace import)
	DeleteAll(ctx context.Context) error

	// CountByCategory counts items whose categories set contains the id
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

// LooseAssetRepository stores ingested asset metadata
type LooseAssetRepository interface {
	// Create inserts ingested asset metadata
	Create(ctx context.Context, asset *models.LooseAsset) error

	// ListAll retrieves all ingested assets
	ListAll(ctx context.Context) ([]models.LooseAsset, error)
}
