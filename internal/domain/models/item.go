package models

import (
	"time"

	"designvault/internal/httputil"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JSONMap is a type alias for JSONB columns
type JSONMap map[string]interface{}

// Item is a catalogued entity (material, object, or note) with metadata
// and images. Dimensions and attributes are open maps: the source app
// never enforces a schema beyond numeric parsing on a few known keys
// (width/height/depth/thickness/unit), so neither do we.
type Item struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Kind        string    `json:"kind" db:"kind"` // open set: material, object, text, ...
	Description string    `json:"description" db:"description"`
	Cost        *float64  `json:"cost" db:"cost"` // nil = no cost recorded
	Currency    string    `json:"currency" db:"currency"`
	Dimensions  JSONMap   `json:"dimensions" db:"dimensions"`
	Attributes  JSONMap   `json:"attributes" db:"attributes"`
	Categories  []string  `json:"categories" db:"categories"` // category ids, dangling tolerated
	Tags        []string  `json:"tags" db:"tags"`
	Assets      []Asset   `json:"assets" db:"assets"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Asset is an image (or other media) reference owned by exactly one
// item. URLs come from the external upload step; they are never
// generated here.
type Asset struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"` // currently only "image"
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// CreateItemRequest creates an item. Only the name is required; kind is
// an open set and is not validated server-side.
type CreateItemRequest struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost"`
	Currency    string   `json:"currency"`
	Dimensions  JSONMap  `json:"dimensions"`
	Attributes  JSONMap  `json:"attributes"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	Assets      []Asset  `json:"assets"`
}

// Validate implements request validation
func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Cost, validation.Min(0.0)),
	)
}

// UpdateItemRequest partially updates an item (RFC 7396 merge
// semantics): fields present in the patch replace prior values, absent
// fields are preserved. Cost is tri-state so it can be cleared to null.
type UpdateItemRequest struct {
	Name        *string                  `json:"name"`
	Kind        *string                  `json:"kind"`
	Description *string                  `json:"description"`
	Cost        httputil.OptionalFloat64 `json:"cost"`
	Currency    *string                  `json:"currency"`
	Dimensions  *JSONMap                 `json:"dimensions"`
	Attributes  *JSONMap                 `json:"attributes"`
	Categories  *[]string                `json:"categories"`
	Tags        *[]string                `json:"tags"`
	Assets      *[]Asset                 `json:"assets"`
}

// Validate implements request validation
func (r UpdateItemRequest) Validate() error {
	if r.Cost.Present && r.Cost.Value != nil && *r.Cost.Value < 0 {
		return validation.NewError("validation_cost", "cost must be no less than 0")
	}
	return nil
}

// ItemFilter narrows the catalogue. All present filters AND together.
type ItemFilter struct {
	Query    string   // case-insensitive substring over name/description/tags
	Category string   // category id, descendant-inclusive; "global" = no filter
	Tags     []string // OR semantics
}

// GlobalCategory is the sentinel category filter value meaning "no
// category filter" (the frontend's all-items view).
const GlobalCategory = "global"

// ExportBundle is the versioned import/export payload. Version is a
// forward-compat placeholder: it is accepted but not branched on.
type ExportBundle struct {
	Version string `json:"version"`
	Items   []Item `json:"items"`
}

// ExportVersion is the bundle version written by export.
const ExportVersion = "1.0"

// LooseAsset is asset metadata ingested independently of any item (the
// upload flow stores metadata here before the item embeds its own copy).
type LooseAsset struct {
	ID        string    `json:"id" db:"id"`
	Kind      string    `json:"kind" db:"kind"`
	URL       string    `json:"url" db:"url"`
	Alt       string    `json:"alt,omitempty" db:"alt"`
	Width     *int      `json:"width,omitempty" db:"width"`
	Height    *int      `json:"height,omitempty" db:"height"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IngestAssetRequest stores metadata for an externally-uploaded asset
type IngestAssetRequest struct {
	Kind   string `json:"kind"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
}

// Validate implements request validation
func (r IngestAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required),
	)
}
