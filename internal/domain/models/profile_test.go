package models

import (
	"testing"
)

func TestUserProfileAccessorsOnNilMap(t *testing.T) {
	p := &UserProfile{}

	if got := p.GetCoins(); got != 0 {
		t.Errorf("GetCoins() = %d, want 0", got)
	}
	if got := p.GetTheme(); got != DefaultTheme {
		t.Errorf("GetTheme() = %q, want %q", got, DefaultTheme)
	}
	collectibles, err := p.GetCollectibles()
	if err != nil {
		t.Fatalf("GetCollectibles() error: %v", err)
	}
	if len(collectibles) != 0 {
		t.Errorf("GetCollectibles() = %v, want empty", collectibles)
	}
}

func TestUserProfileCoinsDecodedAsFloat(t *testing.T) {
	// JSONB round-trips numbers as float64
	p := &UserProfile{Profile: JSONMap{"coins": float64(42)}}
	if got := p.GetCoins(); got != 42 {
		t.Errorf("GetCoins() = %d, want 42", got)
	}
}

func TestUserProfileSettersInitializeMap(t *testing.T) {
	p := &UserProfile{}
	p.SetCoins(10)
	p.SetTheme("dark")
	p.SetCollectibles([]string{"badge-1"})

	if got := p.GetCoins(); got != 10 {
		t.Errorf("GetCoins() = %d, want 10", got)
	}
	if got := p.GetTheme(); got != "dark" {
		t.Errorf("GetTheme() = %q, want dark", got)
	}
	collectibles, err := p.GetCollectibles()
	if err != nil {
		t.Fatalf("GetCollectibles() error: %v", err)
	}
	if len(collectibles) != 1 || collectibles[0] != "badge-1" {
		t.Errorf("GetCollectibles() = %v", collectibles)
	}
}

func TestUserProfileCollectiblesAfterJSONRoundTrip(t *testing.T) {
	// Values read back from JSONB arrive as []interface{}
	p := &UserProfile{Profile: JSONMap{"collectibles": []interface{}{"a", "b"}}}
	collectibles, err := p.GetCollectibles()
	if err != nil {
		t.Fatalf("GetCollectibles() error: %v", err)
	}
	if len(collectibles) != 2 || collectibles[0] != "a" || collectibles[1] != "b" {
		t.Errorf("GetCollectibles() = %v", collectibles)
	}
}

func TestUserProfileCollectiblesWrongType(t *testing.T) {
	p := &UserProfile{Profile: JSONMap{"collectibles": "not-a-list"}}
	if _, err := p.GetCollectibles(); err == nil {
		t.Fatal("expected error for non-list collectibles")
	}
}

func TestItemProgressAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		progress ItemProgress
		want     float64
	}{
		{name: "no records", progress: ItemProgress{}, want: 0},
		{name: "all correct", progress: ItemProgress{Good: 2, Easy: 2}, want: 1},
		{name: "mixed", progress: ItemProgress{Again: 1, Good: 4}, want: 0.8},
		{name: "all again", progress: ItemProgress{Again: 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.progress.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}
