package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoply/internal/models/request_models"
	"shoply/internal/services"
	"shoply/pkg/utils"
)

type ItemsController struct {
	itemService services.ItemServiceInterface
}

func NewItemsController(itemService services.ItemServiceInterface) *ItemsController {
	return &ItemsController{
		itemService: itemService,
	}
}

func (ic *ItemsController) CreateItem(c *gin.Context) {
	var req request_models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := ic.itemService.CreateItem(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Item created successfully")
}

func (ic *ItemsController) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := ic.itemService.GetItemByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item fetched successfully")
}

func (ic *ItemsController) ListItems(c *gin.Context) {
	var query request_models.ListItemsQuery

	if catStr := c.Query("category_id"); catStr != "" {
		catID, err := strconv.ParseUint(catStr, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid category_id")
			return
		}
		id := uint(catID)
		query.CategoryID = &id
	}

	if minStr := c.Query("min_price"); minStr != "" {
		minPrice, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid min_price")
			return
		}
		query.MinPrice = &minPrice
	}

	if maxStr := c.Query("max_price"); maxStr != "" {
		maxPrice, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid max_price")
			return
		}
		query.MaxPrice = &maxPrice
	}

	items, err := ic.itemService.ListItems(query, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Items fetched successfully")
}

func (ic *ItemsController) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	var req request_models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := ic.itemService.UpdateItem(id, req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item updated successfully")
}

func (ic *ItemsController) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	if err := ic.itemService.DeleteItem(id, c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item deleted successfully")
}

func (ic *ItemsController) AssignCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "category_id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := ic.itemService.AssignCategory(itemID, categoryID, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item assigned to category successfully")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
