package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply/internal/models/request_models"
	"shoply/internal/services"
	"shoply/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoriesController(categoryService services.CategoryServiceInterface) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
	}
}

func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := cc.categoryService.CreateCategory(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}
