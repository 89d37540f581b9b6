package repositories

import (
	"context"

	"designvault/internal/domain/models"
)

// CategoryRepository defines data access operations for categories.
// Tree and descendant views are derived in the service layer from the
// flat list; the repository only stores parent-pointer records.
type CategoryRepository interface {
	// Create inserts a new category
	Create(ctx context.Context, category *models.Category) error

	// GetByID retrieves a category by ID
	GetByID(ctx context.Context, id string) (*models.Category, error)

	// Update persists the full category record
	Update(ctx context.Context, category *models.Category) error

	// Delete removes a category. The delete guards (children, item
	// usage) run in the service before this is called.
	Delete(ctx context.Context, id string) error

	// ListAll retrieves all categories in insertion order
	ListAll(ctx context.Context) ([]models.Category, error)

	// CountChildren counts categories whose parent is the given id
	CountChildren(ctx context.Context, id string) (int, error)
}
