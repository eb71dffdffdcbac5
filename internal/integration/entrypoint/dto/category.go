package dto

import (
	"github.com/spendtrack/backend/internal/application/usecase/category"
)

// CategoryResponse represents a single category.
type CategoryResponse struct {
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
	Type   string  `json:"type"`
}

// CategoryListResponse is the category list with its hierarchy.
type CategoryListResponse struct {
	Categories []CategoryResponse             `json:"categories"`
	Tree       map[string]map[string][]string `json:"tree"`
	ParentOf   map[string]string              `json:"parent_of"`
}

// ToCategoryListResponse converts a ListCategoriesOutput to its response DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryResponse{
			Name:   c.Name,
			Parent: c.Parent,
			Type:   string(c.Type),
		}
	}

	tree := make(map[string]map[string][]string, len(output.Tree))
	for t, parents := range output.Tree {
		tree[string(t)] = parents
	}

	return CategoryListResponse{
		Categories: categories,
		Tree:       tree,
		ParentOf:   output.ParentOf,
	}
}
