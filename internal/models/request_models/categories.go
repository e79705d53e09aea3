package request_models

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
