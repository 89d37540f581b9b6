// Package seed loads sample catalogue data for development
// environments. The fixture is embedded so the seed binary and the dev
// endpoint share one source of truth.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"designvault/internal/domain/models"
	"designvault/internal/service"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Fixture keys reference categories symbolically; ids are assigned by
// the services at insert time and resolved here.
type fixtureCategory struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Parent string `yaml:"parent"`
}

type fixtureItem struct {
	Name        string                 `yaml:"name"`
	Kind        string                 `yaml:"kind"`
	Description string                 `yaml:"description"`
	Cost        *float64               `yaml:"cost"`
	Currency    string                 `yaml:"currency"`
	Categories  []string               `yaml:"categories"`
	Tags        []string               `yaml:"tags"`
	Dimensions  map[string]interface{} `yaml:"dimensions"`
	Attributes  map[string]interface{} `yaml:"attributes"`
}

type fixture struct {
	Categories []fixtureCategory `yaml:"categories"`
	Items      []fixtureItem     `yaml:"items"`
}

// Result reports what a seed run inserted
type Result struct {
	Categories int `json:"categories"`
	Items      int `json:"items"`
}

// Seeder inserts the embedded fixture through the service layer so
// seeded rows get the same id assignment and normalization as API
// writes.
type Seeder struct {
	categoryService *service.CategoryService
	itemService     *service.ItemService
	logger          *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(categoryService *service.CategoryService, itemService *service.ItemService, logger *slog.Logger) *Seeder {
	return &Seeder{
		categoryService: categoryService,
		itemService:     itemService,
		logger:          logger,
	}
}

// Run inserts the fixture data. It is additive: existing rows are left
// alone, so repeated runs duplicate the samples.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	var fx fixture
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	// Categories first, in file order so parents resolve before children
	idsByKey := make(map[string]string, len(fx.Categories))
	for _, fc := range fx.Categories {
		req := &models.CreateCategoryRequest{Name: fc.Name}
		if fc.Parent != "" {
			parentID, ok := idsByKey[fc.Parent]
			if !ok {
				return nil, fmt.Errorf("fixture category %q references unknown parent %q", fc.Key, fc.Parent)
			}
			req.ParentID = &parentID
		}

		category, err := s.categoryService.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", fc.Name, err)
		}
		idsByKey[fc.Key] = category.ID
	}

	for _, fi := range fx.Items {
		categoryIDs := make([]string, 0, len(fi.Categories))
		for _, key := range fi.Categories {
			id, ok := idsByKey[key]
			if !ok {
				return nil, fmt.Errorf("fixture item %q references unknown category %q", fi.Name, key)
			}
			categoryIDs = append(categoryIDs, id)
		}

		req := &models.CreateItemRequest{
			Name:        fi.Name,
			Kind:        fi.Kind,
			Description: fi.Description,
			Cost:        fi.Cost,
			Currency:    fi.Currency,
			Dimensions:  fi.Dimensions,
			Attributes:  fi.Attributes,
			Categories:  categoryIDs,
			Tags:        fi.Tags,
		}
		if _, err := s.itemService.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("seed item %q: %w", fi.Name, err)
		}
	}

	result := &Result{Categories: len(fx.Categories), Items: len(fx.Items)}

	s.logger.Info("seed complete",
		"categories", result.Categories,
		"items", result.Items,
	)

	return result, nil
}
