package models

import (
	"time"

	"designvault/internal/httputil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Category is a named node in a parent-pointer hierarchy used to
// organize items. The flat records form a forest; the nested view is
// rebuilt on demand (see service.BuildCategoryTree).
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ParentID  *string   `json:"parentId" db:"parent_id"` // NULL = root
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryTreeNode is a category with its nested children, in insertion
// order of the underlying flat list.
type CategoryTreeNode struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	ParentID  *string             `json:"parentId"`
	CreatedAt time.Time           `json:"createdAt"`
	Children  []*CategoryTreeNode `json:"children"`
}

// CreateCategoryRequest creates a category. ParentID is deliberately not
// checked against existing categories; a dangling parent is tolerated
// and the tree view treats the category as a root.
type CreateCategoryRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}

// Validate implements request validation
func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// UpdateCategoryRequest partially updates a category. ParentID is
// tri-state: absent keeps the current parent, null moves the category to
// the root, a value re-parents it.
type UpdateCategoryRequest struct {
	Name     *string                 `json:"name"`
	ParentID httputil.OptionalString `json:"parentId"`
}
