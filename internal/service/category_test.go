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

func newCategoryService(categoryRepo *fakeCategoryRepo, itemRepo *fakeItemRepo) *CategoryService {
	return NewCategoryService(categoryRepo, itemRepo, testLogger())
}

func TestCategoryCreate(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeItemRepo{})

	category, err := svc.Create(context.Background(), &models.CreateCategoryRequest{Name: "  Wood  "})
	require.NoError(t, err)

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Wood", category.Name)
	assert.Nil(t, category.ParentID)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryCreateRequiresName(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeItemRepo{})

	_, err := svc.Create(context.Background(), &models.CreateCategoryRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCategoryCreateAcceptsDanglingParent(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeItemRepo{})

	// Parent existence is intentionally not checked
	category, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name:     "Wood",
		ParentID: strPtr("does-not-exist"),
	})
	require.NoError(t, err)
	require.NotNil(t, category.ParentID)
	assert.Equal(t, "does-not-exist", *category.ParentID)
}

func TestCategoryCreateEmptyParentMeansRoot(t *testing.T) {
	svc := newCategoryService(&fakeCategoryRepo{}, &fakeItemRepo{})

	category, err := svc.Create(context.Background(), &models.CreateCategoryRequest{
		Name:     "Wood",
		ParentID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, category.ParentID)
}

func TestCategoryUpdate(t *testing.T) {
	repo := &fakeCategoryRepo{categories: []models.Category{
		{ID: "c1", Name: "Wood", ParentID: strPtr("materials")},
	}}
	svc := newCategoryService(repo, &fakeItemRepo{})

	t.Run("rename keeps parent", func(t *testing.T) {
		got, err := svc.Update(context.Background(), "c1", &models.UpdateCategoryRequest{
			Name: strPtr("Hardwood"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Hardwood", got.Name)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, "materials", *got.ParentID)
	})

	t.Run("empty name keeps current", func(t *testing.T) {
		got, err := svc.Update(context.Background(), "c1", &models.UpdateCategoryRequest{
			Name: strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "Hardwood", got.Name)
	})

	t.Run("explicit null parent moves to root", func(t *testing.T) {
		req := &models.UpdateCategoryRequest{}
		req.ParentID.Present = true
		req.ParentID.Value = nil

		got, err := svc.Update(context.Background(), "c1", req)
		require.NoError(t, err)
		assert.Nil(t, got.ParentID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", &models.UpdateCategoryRequest{})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCategoryDeleteGuards(t *testing.T) {
	t.Run("blocked by child categories", func(t *testing.T) {
		repo := &fakeCategoryRepo{categories: []models.Category{
			{ID: "parent", Name: "Materials"},
			{ID: "child", Name: "Wood", ParentID: strPtr("parent")},
		}}
		svc := newCategoryService(repo, &fakeItemRepo{})

		err := svc.Delete(context.Background(), "parent")
		require.Error(t, err)
		assert.Equal(t, "Cannot delete category with children", err.Error())
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Len(t, repo.categories, 2)
	})

	t.Run("blocked by referencing items", func(t *testing.T) {
		repo := &fakeCategoryRepo{categories: []models.Category{
			{ID: "wood", Name: "Wood"},
		}}
		items := &fakeItemRepo{items: []models.Item{
			{ID: "i1", Name: "Door", Categories: []string{"wood"}},
		}}
		svc := newCategoryService(repo, items)

		err := svc.Delete(context.Background(), "wood")
		require.Error(t, err)
		assert.Equal(t, "Cannot delete category that is used by items", err.Error())
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("unused leaf deletes", func(t *testing.T) {
		repo := &fakeCategoryRepo{categories: []models.Category{
			{ID: "wood", Name: "Wood"},
		}}
		svc := newCategoryService(repo, &fakeItemRepo{})

		require.NoError(t, svc.Delete(context.Background(), "wood"))
		assert.Empty(t, repo.categories)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newCategoryService(&fakeCategoryRepo{}, &fakeItemRepo{})
		err := svc.Delete(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
