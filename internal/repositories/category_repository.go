package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shoply/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	CreateCategory(ctx context.Context, category *db_models.Category) error
	GetCategoryByID(ctx context.Context, id uint) (*db_models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return err
		}
		return nil
	})
}

// GetCategoryByID returns (nil, nil) when no category has that id.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
