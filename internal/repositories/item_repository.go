package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shoply/internal/models/db_models"
)

// ItemFilters holds the optional listing predicates. A nil field means the
// predicate is absent; present predicates combine with AND.
type ItemFilters struct {
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ItemRepositoryInterface interface {
	CreateItem(ctx context.Context, item *db_models.Item) error
	GetItemByID(ctx context.Context, id uint) (*db_models.Item, error)
	ListItems(ctx context.Context, filters ItemFilters) ([]db_models.Item, error)
	UpdateItem(ctx context.Context, item *db_models.Item) error
	DeleteItem(ctx context.Context, id uint) error
}

func NewItemRepository(db *gorm.DB) ItemRepositoryInterface {
	return &ItemRepository{db: db}
}

type ItemRepository struct {
	db *gorm.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetItemByID returns (nil, nil) when no item has that id.
func (r *ItemRepository) GetItemByID(ctx context.Context, id uint) (*db_models.Item, error) {
	var item db_models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&item, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListItems applies one WHERE clause per present predicate. Items with a
// null category never match a category predicate. Results keep insertion
// order (id ascending).
func (r *ItemRepository) ListItems(ctx context.Context, filters ItemFilters) ([]db_models.Item, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Order("items.id ASC")

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var items []db_models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item *db_models.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(item)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&db_models.Item{}, "id = ?", id).Error
}
