package category

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  Type   `json:"type"`
}
