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

// ItemService owns the catalogued items: CRUD with server-assigned ids
// and timestamps, plus the filtered listing backed by the pure
// catalogue query.
type ItemService struct {
	itemRepo     repositories.ItemRepository
	categoryRepo repositories.CategoryRepository
	logger       *slog.Logger
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repositories.ItemRepository,
	categoryRepo repositories.CategoryRepository,
	logger *slog.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates an item with a server-assigned id and timestamps.
// Category references are stored as supplied; dangling ids are
// tolerated (the delete guard runs the other direction).
func (s *ItemService) Create(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now().UTC()
	item := &models.Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Kind:        req.Kind,
		Description: req.Description,
		Cost:        req.Cost,
		Currency:    defaultCurrency(req.Currency),
		Dimensions:  emptyIfNilMap(req.Dimensions),
		Attributes:  emptyIfNilMap(req.Attributes),
		Categories:  emptyIfNilSlice(req.Categories),
		Tags:        emptyIfNilSlice(req.Tags),
		Assets:      withAssetIDs(req.Assets),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item created", "id", item.ID, "name", item.Name, "kind", item.Kind)

	return item, nil
}

// GetByID retrieves an item
func (s *ItemService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

// Update applies merge-patch semantics: fields present in the request
// replace prior values, absent fields are preserved, updatedAt is
// always refreshed, id and createdAt are immutable.
func (s *ItemService) Update(ctx context.Context, id string, req *models.UpdateItemRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Kind != nil {
		item.Kind = *req.Kind
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Cost.Present {
		item.Cost = req.Cost.Value
	}
	if req.Currency != nil {
		item.Currency = defaultCurrency(*req.Currency)
	}
	if req.Dimensions != nil {
		item.Dimensions = emptyIfNilMap(*req.Dimensions)
	}
	if req.Attributes != nil {
		item.Attributes = emptyIfNilMap(*req.Attributes)
	}
	if req.Categories != nil {
		item.Categories = emptyIfNilSlice(*req.Categories)
	}
	if req.Tags != nil {
		item.Tags = emptyIfNilSlice(*req.Tags)
	}
	if req.Assets != nil {
		item.Assets = withAssetIDs(*req.Assets)
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("item updated", "id", item.ID, "name", item.Name)

	return item, nil
}

// Delete removes an item. A second delete of the same id fails with
// not-found, never a silent success.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("item deleted", "id", id)

	return nil
}

// List returns the items matching the filter. With an empty filter this
// is the full collection.
func (s *ItemService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Query == "" && (filter.Category == "" || filter.Category == models.GlobalCategory) && len(filter.Tags) == 0 {
		return items, nil
	}

	var categories []models.Category
	if filter.Category != "" && filter.Category != models.GlobalCategory {
		categories, err = s.categoryRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	return QueryItems(items, categories, filter), nil
}

// withAssetIDs assigns ids to assets that arrived without one. Asset
// URLs are produced by the external upload step and stored verbatim.
func withAssetIDs(assets []models.Asset) []models.Asset {
	result := make([]models.Asset, 0, len(assets))
	for _, asset := range assets {
		if asset.ID == "" {
			asset.ID = uuid.NewString()
		}
		if asset.Kind == "" {
			asset.Kind = "image"
		}
		result = append(result, asset)
	}
	return result
}

func defaultCurrency(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}

func emptyIfNilMap(m models.JSONMap) models.JSONMap {
	if m == nil {
		return models.JSONMap{}
	}
	return m
}

func emptyIfNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
