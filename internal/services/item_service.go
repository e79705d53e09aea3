package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shoply/internal/models/db_models"
	"shoply/internal/models/request_models"
	"shoply/internal/models/response_models"
	"shoply/internal/repositories"
	"shoply/pkg/utils"
)

type ItemServiceInterface interface {
	CreateItem(req request_models.CreateItemRequest, ctx context.Context) (*response_models.ItemResponse, error)
	GetItemByID(id uint, ctx context.Context) (*response_models.ItemResponse, error)
	ListItems(query request_models.ListItemsQuery, ctx context.Context) ([]response_models.ItemResponse, error)
	UpdateItem(id uint, req request_models.UpdateItemRequest, ctx context.Context) (*response_models.ItemResponse, error)
	DeleteItem(id uint, ctx context.Context) error
	AssignCategory(itemID uint, categoryID uint, ctx context.Context) (*response_models.ItemResponse, error)
}

type ItemService struct {
	itemRepo     repositories.ItemRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewItemService(
	itemRepo repositories.ItemRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) ItemServiceInterface {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ItemService) CreateItem(req request_models.CreateItemRequest, ctx context.Context) (*response_models.ItemResponse, error) {
	price := decimal.NewFromFloat(req.Price)
	if err := validateItemFields(req.Name, price); err != nil {
		return nil, err
	}

	item := &db_models.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       price,
	}

	if req.CategoryID != nil {
		category, err := s.requireCategory(*req.CategoryID, ctx)
		if err != nil {
			return nil, err
		}
		item.CategoryID = req.CategoryID
		item.Category = category
	}

	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toItemResponse(item), nil
}

func (s *ItemService) GetItemByID(id uint, ctx context.Context) (*response_models.ItemResponse, error) {
	item, err := s.itemRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	return toItemResponse(item), nil
}

func (s *ItemService) ListItems(query request_models.ListItemsQuery, ctx context.Context) ([]response_models.ItemResponse, error) {
	filters := repositories.ItemFilters{
		CategoryID: query.CategoryID,
	}
	if query.MinPrice != nil {
		min := decimal.NewFromFloat(*query.MinPrice)
		filters.MinPrice = &min
	}
	if query.MaxPrice != nil {
		max := decimal.NewFromFloat(*query.MaxPrice)
		filters.MaxPrice = &max
	}

	items, err := s.itemRepo.ListItems(ctx, filters)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toItemResponse(&items[i]))
	}
	return responses, nil
}

func (s *ItemService) UpdateItem(id uint, req request_models.UpdateItemRequest, ctx context.Context) (*response_models.ItemResponse, error) {
	item, err := s.itemRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", utils.ErrInvalidInput)
		}
		item.Name = strings.TrimSpace(*req.Name)
	}

	if req.Description != nil {
		item.Description = *req.Description
	}

	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be 0 or greater", utils.ErrInvalidInput)
		}
		item.Price = price
	}

	if req.CategoryID != nil {
		category, err := s.requireCategory(*req.CategoryID, ctx)
		if err != nil {
			return nil, err
		}
		item.CategoryID = req.CategoryID
		item.Category = category
	}

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toItemResponse(item), nil
}

func (s *ItemService) DeleteItem(id uint, ctx context.Context) error {
	item, err := s.itemRepo.GetItemByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrItemNotFound
	}

	if err := s.itemRepo.DeleteItem(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AssignCategory sets the item's category reference. Re-assigning the same
// category is a no-op that still succeeds.
func (s *ItemService) AssignCategory(itemID uint, categoryID uint, ctx context.Context) (*response_models.ItemResponse, error) {
	item, err := s.itemRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	category, err := s.requireCategory(categoryID, ctx)
	if err != nil {
		return nil, err
	}

	item.CategoryID = &categoryID
	item.Category = category

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toItemResponse(item), nil
}

func (s *ItemService) requireCategory(id uint, ctx context.Context) (*db_models.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

func validateItemFields(name string, price decimal.Decimal) error {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if price.IsNegative() {
		errs = append(errs, "price must be 0 or greater")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", utils.ErrInvalidInput, strings.Join(errs, ", "))
	}
	return nil
}

func toItemResponse(item *db_models.Item) *response_models.ItemResponse {
	resp := &response_models.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
		CategoryID:  item.CategoryID,
	}
	if item.Category != nil {
		resp.Category = &response_models.CategoryResponse{
			ID:   item.Category.ID,
			Name: item.Category.Name,
		}
	}
	return resp
}
