package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"shoply/internal/models/request_models"
	"shoply/pkg/utils"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns a fresh id", func(t *testing.T) {
		repo := &mockCategoryRepo{}
		svc := NewCategoryService(repo)

		created, err := svc.CreateCategory(request_models.CreateCategoryRequest{Name: "Fruits"}, ctx)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, "Fruits", created.Name)

		second, err := svc.CreateCategory(request_models.CreateCategoryRequest{Name: "Snacks"}, ctx)
		assert.NoError(t, err)
		assert.Equal(t, uint(2), second.ID)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		repo := &mockCategoryRepo{}
		svc := NewCategoryService(repo)

		_, err := svc.CreateCategory(request_models.CreateCategoryRequest{Name: "   "}, ctx)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, repo.lastSavedName)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		repo := &mockCategoryRepo{}
		svc := NewCategoryService(repo)

		_, err := svc.CreateCategory(request_models.CreateCategoryRequest{Name: "Fruits"}, ctx)
		assert.NoError(t, err)

		_, err = svc.CreateCategory(request_models.CreateCategoryRequest{Name: "Fruits"}, ctx)
		assert.ErrorIs(t, err, utils.ErrCategoryExists)
		assert.Len(t, repo.categories, 1)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		repo := &mockCategoryRepo{err: errors.New("db down")}
		svc := NewCategoryService(repo)

		_, err := svc.CreateCategory(request_models.CreateCategoryRequest{Name: "Fruits"}, ctx)
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("returns categories in insertion order", func(t *testing.T) {
		repo := &mockCategoryRepo{}
		svc := NewCategoryService(repo)

		seedCategory(t, repo, "Fruits")
		seedCategory(t, repo, "Snacks")

		categories, err := svc.ListCategories(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		assert.Equal(t, "Fruits", categories[0].Name)
		assert.Equal(t, "Snacks", categories[1].Name)
	})

	t.Run("empty store yields an empty list", func(t *testing.T) {
		svc := NewCategoryService(&mockCategoryRepo{})

		categories, err := svc.ListCategories(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 0)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		svc := NewCategoryService(&mockCategoryRepo{err: errors.New("db down")})

		_, err := svc.ListCategories(ctx)
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}
