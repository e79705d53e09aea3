package response_models

type ItemResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	CategoryID  *uint             `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
}
