package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// CategoryService owns the category forest: flat CRUD plus the derived
// tree and descendant-closure views used for filtering and the delete
// guards.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	itemRepo     repositories.ItemRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.ItemRepository,
	logger *slog.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// Create creates a category. The parent id is stored as supplied: it is
// deliberately not validated against existing categories, matching the
// lenient behavior existing clients rely on (an orphaned category shows
// up as a root in the tree view).
func (s *CategoryService) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		ParentID:  normalizeParent(req.ParentID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		"id", category.ID,
		"name", category.Name,
		"parent_id", category.ParentID,
	)

	return category, nil
}

// Update partially updates a category. An absent or empty name keeps
// the current one; parentId is tri-state (absent=keep, null=root,
// value=re-parent, again without existence validation).
func (s *CategoryService) Update(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.ParentID.Present {
		category.ParentID = normalizeParent(req.ParentID.Value)
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category updated", "id", category.ID, "name", category.Name)

	return category, nil
}

// Delete removes a category after the two guards pass: it must have no
// child categories and no item may reference it. The guards are two
// independent reads with no lock between them; a concurrent item update
// can slip a reference in during that window (accepted, records are the
// unit of consistency).
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	childCount, err := s.categoryRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if childCount > 0 {
		return &domain.HasChildrenError{CategoryID: id}
	}

	usedCount, err := s.itemRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if usedCount > 0 {
		return &domain.InUseError{CategoryID: id}
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", "id", id)

	return nil
}

// ListFlat returns all categories as flat records
func (s *CategoryService) ListFlat(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}

// Tree returns the nested forest view, rebuilt from the flat list on
// every call.
func (s *CategoryService) Tree(ctx context.Context) ([]*models.CategoryTreeNode, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tree := BuildCategoryTree(categories)

	s.logger.Debug("category tree built", "category_count", len(categories))

	return tree, nil
}

// DescendantsOf returns the id plus the transitive closure of its
// children, for descendant-inclusive filtering.
func (s *CategoryService) DescendantsOf(ctx context.Context, id string) ([]string, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Descendants(categories, id), nil
}

// normalizeParent maps the empty string to nil so "" and null both mean
// root, matching the original API's loose typing.
func normalizeParent(parentID *string) *string {
	if parentID == nil || *parentID == "" {
		return nil
	}
	return parentID
}
