package models

// Category represents an article category. Slug is the stable identifier
// used in URLs; Name is the display name.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Slug string `json:"slug" db:"slug"`
}

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
