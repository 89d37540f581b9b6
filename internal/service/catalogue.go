package service

import (
	"strings"

	"designvault/internal/domain/models"
)

// The catalogue query is a pure function of (item set, category set,
// filter): no side effects, no mutation of the inputs. Filters compose
// by logical AND; each one is an independent set intersection, so
// evaluation order does not affect the result.

// QueryItems returns the subset of items matching the filter. Category
// filtering is transitive over descendants; the "global" sentinel (and
// the empty string) disables it.
func QueryItems(items []models.Item, categories []models.Category, filter models.ItemFilter) []models.Item {
	matched := make([]models.Item, 0, len(items))

	var descendants map[string]bool
	if filter.Category != "" && filter.Category != models.GlobalCategory {
		descendants = make(map[string]bool)
		for _, id := range Descendants(categories, filter.Category) {
			descendants[id] = true
		}
	}

	for _, item := range items {
		if filter.Query != "" && !matchesQuery(item, filter.Query) {
			continue
		}
		if descendants != nil && !matchesCategories(item, descendants) {
			continue
		}
		if len(filter.Tags) > 0 && !matchesTags(item, filter.Tags) {
			continue
		}
		matched = append(matched, item)
	}

	return matched
}

// matchesQuery reports whether the lower-cased query is a substring of
// the item's name, description, or any of its tags.
func matchesQuery(item models.Item, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if item.Description != "" && strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesCategories reports whether the item's category set intersects
// the expanded descendant set.
func matchesCategories(item models.Item, descendants map[string]bool) bool {
	for _, id := range item.Categories {
		if descendants[id] {
			return true
		}
	}
	return false
}

// matchesTags reports whether the item carries any of the requested
// tags (OR semantics, not AND).
func matchesTags(item models.Item, tags []string) bool {
	for _, want := range tags {
		for _, tag := range item.Tags {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// Descendants returns the given id plus the ids of every category whose
// parent chain reaches it. A non-existent id yields an empty result.
func Descendants(categories []models.Category, id string) []string {
	exists := false
	children := make(map[string][]string, len(categories))
	for _, c := range categories {
		if c.ID == id {
			exists = true
		}
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}
	if !exists {
		return []string{}
	}

	result := []string{id}
	queue := []string{id}
	seen := map[string]bool{id: true}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			// A cycle in the parent graph would otherwise loop forever
			if seen[child] {
				continue
			}
			seen[child] = true
			result = append(result, child)
			queue = append(queue, child)
		}
	}

	return result
}

// BuildCategoryTree returns the forest view of the flat category list.
// Every category appears exactly once; a category whose declared parent
// does not resolve is silently treated as a root. Children keep the
// insertion order of the flat list.
func BuildCategoryTree(categories []models.Category) []*models.CategoryTreeNode {
	nodes := make(map[string]*models.CategoryTreeNode, len(categories))

	// First pass: create all nodes
	for _, c := range categories {
		nodes[c.ID] = &models.CategoryTreeNode{
			ID:        c.ID,
			Name:      c.Name,
			ParentID:  c.ParentID,
			CreatedAt: c.CreatedAt,
			Children:  []*models.CategoryTreeNode{},
		}
	}

	// Second pass: attach children to parents, collecting roots
	roots := make([]*models.CategoryTreeNode, 0)
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok || parent == node {
			// Orphaned parent reference: surface the category as a root
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}
