package request_models

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	CategoryID  *uint   `json:"category_id"`
}

// UpdateItemRequest carries a partial update. Pointer fields distinguish
// "not supplied" (nil, leave untouched) from a supplied value.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *uint    `json:"category_id,omitempty"`
}

type ListItemsQuery struct {
	CategoryID *uint
	MinPrice   *float64
	MaxPrice   *float64
}
