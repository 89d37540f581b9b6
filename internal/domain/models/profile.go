package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the per-user gamification state (coins, theme,
// collectibles) in a single namespaced JSONB column, keyed by the
// opaque identity the auth provider yields.
type UserProfile struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Profile   JSONMap   `json:"profile" db:"profile"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultTheme is applied when a user has no theme stored
const DefaultTheme = "light"

// GetCoins extracts the coin balance, defaulting to zero
func (p *UserProfile) GetCoins() int {
	if p.Profile == nil {
		return 0
	}
	raw, ok := p.Profile["coins"]
	if !ok {
		return 0
	}
	// JSON numbers decode as float64
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// SetCoins sets the coin balance
func (p *UserProfile) SetCoins(coins int) {
	if p.Profile == nil {
		p.Profile = JSONMap{}
	}
	p.Profile["coins"] = coins
}

// GetTheme extracts the active theme, defaulting to DefaultTheme
func (p *UserProfile) GetTheme() string {
	if p.Profile == nil {
		return DefaultTheme
	}
	theme, ok := p.Profile["theme"].(string)
	if !ok || theme == "" {
		return DefaultTheme
	}
	return theme
}

// SetTheme sets the active theme
func (p *UserProfile) SetTheme(theme string) {
	if p.Profile == nil {
		p.Profile = JSONMap{}
	}
	p.Profile["theme"] = theme
}

// GetCollectibles extracts the owned collectible ids with type safety
func (p *UserProfile) GetCollectibles() ([]string, error) {
	if p.Profile == nil {
		return []string{}, nil
	}
	raw, ok := p.Profile["collectibles"]
	if !ok {
		return []string{}, nil
	}

	// Re-marshal to ensure type safety
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var collectibles []string
	if err := json.Unmarshal(data, &collectibles); err != nil {
		return nil, err
	}
	return collectibles, nil
}

// SetCollectibles sets the owned collectible ids
func (p *UserProfile) SetCollectibles(collectibles []string) {
	if p.Profile == nil {
		p.Profile = JSONMap{}
	}
	p.Profile["collectibles"] = collectibles
}

// UpdateProfileRequest partially updates a profile. Only provided
// fields are changed.
type UpdateProfileRequest struct {
	Coins        *int      `json:"coins"`
	Theme        *string   `json:"theme"`
	Collectibles *[]string `json:"collectibles"`
}

// ProfileResponse is the flattened profile view returned to clients
type ProfileResponse struct {
	UserID       string    `json:"userId"`
	Coins        int       `json:"coins"`
	Theme        string    `json:"theme"`
	Collectibles []string  `json:"collectibles"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
