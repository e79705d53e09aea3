package services

import (
	"context"
	"fmt"
	"strings"

	"shoply/internal/models/db_models"
	"shoply/internal/models/request_models"
	"shoply/internal/models/response_models"
	"shoply/internal/repositories"
	"shoply/pkg/utils"
)

type CategoryServiceInterface interface {
	CreateCategory(req request_models.CreateCategoryRequest, ctx context.Context) (*response_models.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryService) CreateCategory(req request_models.CreateCategoryRequest, ctx context.Context) (*response_models.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", utils.ErrInvalidInput)
	}

	existing, err := s.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &db_models.Category{Name: name}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}
	return responses, nil
}
