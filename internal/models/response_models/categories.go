package response_models

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
