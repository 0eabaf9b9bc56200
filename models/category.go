package models

// AllCategories is the category filter value that matches every product.
const AllCategories = "All"

type CategoryList struct {
	Categories []string `json:"categories"`
}
