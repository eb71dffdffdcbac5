// Package entity defines the core business entities for the domain layer.
package entity

// Category is a named label for transactions. Categories form a two-level
// hierarchy: a category with no Parent is a top-level category. Names are
// unique within a TransactionType.
type Category struct {
	Name   string
	Parent *string
	Type   TransactionType
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.Parent == nil || *c.Parent == ""
}

// ParentName returns the parent's name, or the category's own name when it
// is top-level.
func (c *Category) ParentName() string {
	if c.IsTopLevel() {
		return c.Name
	}
	return *c.Parent
}

// CategoryTree groups categories per type as parent -> [parent, children...].
type CategoryTree map[TransactionType]map[string][]string

// CategoryHierarchy is the derived view of the category list used by the
// dashboard and the category endpoints.
type CategoryHierarchy struct {
	Categories []*Category
	Tree       CategoryTree
	ParentOf   map[string]string
}

// BuildCategoryHierarchy derives the tree and the child -> parent lookup from
// a flat list. Every parent list starts with the parent itself.
func BuildCategoryHierarchy(categories []*Category) *CategoryHierarchy {
	tree := make(CategoryTree)
	parentOf := make(map[string]string, len(categories))

	for _, c := range categories {
		if tree[c.Type] == nil {
			tree[c.Type] = make(map[string][]string)
		}
		parent := c.ParentName()
		parentOf[c.Name] = parent

		members := tree[c.Type][parent]
		if len(members) == 0 {
			members = []string{parent}
		}
		if !c.IsTopLevel() {
			members = append(members, c.Name)
		}
		tree[c.Type][parent] = members
	}

	return &CategoryHierarchy{
		Categories: categories,
		Tree:       tree,
		ParentOf:   parentOf,
	}
}
