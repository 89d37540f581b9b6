package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// In-memory repository fakes. Slices keep insertion order, matching the
// created_at ordering the Postgres implementations guarantee.

type fakeItemRepo struct {
	items []models.Item
}

func (f *fakeItemRepo) Create(_ context.Context, item *models.Item) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*models.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, &domain.NotFoundError{Message: "item not found"}
}

func (f *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return &domain.NotFoundError{Message: "item not found"}
}

func (f *fakeItemRepo) Delete(_ context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{Message: "item not found"}
}

func (f *fakeItemRepo) ListAll(_ context.Context) ([]models.Item, error) {
	out := make([]models.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeItemRepo) DeleteAll(_ context.Context) error {
	f.items = nil
	return nil
}

func (f *fakeItemRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, item := range f.items {
		for _, c := range item.Categories {
			if c == categoryID {
				count++
				break
			}
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, &domain.NotFoundError{Message: "category not found"}
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category
			return nil
		}
	}
	return &domain.NotFoundError{Message: "category not found"}
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{Message: "category not found"}
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]models.Category, error) {
	out := make([]models.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryRepo) CountChildren(_ context.Context, id string) (int, error) {
	count := 0
	for _, c := range f.categories {
		if c.ParentID != nil && *c.ParentID == id {
			count++
		}
	}
	return count, nil
}

type fakeGradeRepo struct {
	grades []models.Grade
}

func (f *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) error {
	f.grades = append(f.grades, *grade)
	return nil
}

func (f *fakeGradeRepo) ListByItem(_ context.Context, itemID string) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range f.grades {
		if g.ItemID == itemID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGradeRepo) ListAll(_ context.Context) ([]models.Grade, error) {
	out := make([]models.Grade, len(f.grades))
	copy(out, f.grades)
	return out, nil
}

func (f *fakeGradeRepo) DeleteAll(_ context.Context) error {
	f.grades = nil
	return nil
}

type fakeSessionStatRepo struct {
	stats []models.SessionStat
}

func (f *fakeSessionStatRepo) Create(_ context.Context, stat *models.SessionStat) error {
	f.stats = append(f.stats, *stat)
	return nil
}

func (f *fakeSessionStatRepo) ListAll(_ context.Context) ([]models.SessionStat, error) {
	out := make([]models.SessionStat, len(f.stats))
	copy(out, f.stats)
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]models.UserProfile
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return &p, nil
	}
	return nil, &domain.NotFoundError{Message: "profile not found"}
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *models.UserProfile) error {
	if f.profiles == nil {
		f.profiles = make(map[uuid.UUID]models.UserProfile)
	}
	f.profiles[profile.UserID] = *profile
	return nil
}

type fakeAssetRepo struct {
	assets []models.LooseAsset
}

func (f *fakeAssetRepo) Create(_ context.Context, asset *models.LooseAsset) error {
	f.assets = append(f.assets, *asset)
	return nil
}

func (f *fakeAssetRepo) ListAll(_ context.Context) ([]models.LooseAsset, error) {
	out := make([]models.LooseAsset, len(f.assets))
	copy(out, f.assets)
	return out, nil
}

// fakeTxManager runs the function directly; the fakes have no
// transaction semantics to honor.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
