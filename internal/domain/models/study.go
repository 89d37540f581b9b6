package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Grade values for a single study event
const (
	GradeAgain = "again"
	GradeGood  = "good"
	GradeEasy  = "easy"
)

// Grade is an append-only record of one study event for one item.
// Records are never updated or deleted individually.
type Grade struct {
	ID        string    `json:"id" db:"id"`
	ItemID    string    `json:"itemId" db:"item_id"`
	Grade     string    `json:"grade" db:"grade"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// GradeRequest submits a grade. The item id is intentionally not
// validated against the item store; grades for deleted or unknown items
// are accepted and simply never surface as due.
type GradeRequest struct {
	ItemID    string    `json:"itemId"`
	Grade     string    `json:"grade"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate implements request validation
func (r GradeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemID, validation.Required),
		validation.Field(&r.Grade, validation.Required,
			validation.In(GradeAgain, GradeGood, GradeEasy)),
	)
}

// ItemProgress summarizes the grade ledger for one item
type ItemProgress struct {
	ItemID   string     `json:"itemId"`
	Again    int        `json:"again"`
	Good     int        `json:"good"`
	Easy     int        `json:"easy"`
	LastSeen *time.Time `json:"lastSeen"`
}

// Total returns the number of recorded grades
func (p ItemProgress) Total() int { return p.Again + p.Good + p.Easy }

// Accuracy is (good+easy)/total, or 0 with no records
func (p ItemProgress) Accuracy() float64 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return float64(p.Good+p.Easy) / float64(total)
}

// DueItem is an item whose computed review interval has elapsed since it
// was last graded (or which was never graded at all).
type DueItem struct {
	Item         Item       `json:"item"`
	Accuracy     float64    `json:"accuracy"`
	IntervalDays int        `json:"intervalDays"`
	LastSeen     *time.Time `json:"lastSeen"`
}

// SessionStat is the aggregated summary of one study session, written
// once at session end. Append-only.
type SessionStat struct {
	ID              string    `json:"id" db:"id"`
	Mode            string    `json:"mode" db:"mode"`
	TotalCards      int       `json:"totalCards" db:"total_cards"`
	Again           int       `json:"again" db:"again_count"`
	Good            int       `json:"good" db:"good_count"`
	Easy            int       `json:"easy" db:"easy_count"`
	Accuracy        float64   `json:"accuracy" db:"accuracy"`
	DurationSeconds int       `json:"durationSeconds" db:"duration_seconds"`
	CoinsEarned     int       `json:"coinsEarned" db:"coins_earned"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// CreateSessionStatRequest records a completed session
type CreateSessionStatRequest struct {
	Mode            string  `json:"mode"`
	TotalCards      int     `json:"totalCards"`
	Again           int     `json:"again"`
	Good            int     `json:"good"`
	Easy            int     `json:"easy"`
	Accuracy        float64 `json:"accuracy"`
	DurationSeconds int     `json:"durationSeconds"`
	CoinsEarned     int     `json:"coinsEarned"`
}

// Validate implements request validation
func (r CreateSessionStatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Mode, validation.Required),
		validation.Field(&r.TotalCards, validation.Min(0)),
	)
}

// SessionAggregate sums the session ledger. AverageAccuracy is the mean
// of per-session accuracies; TotalAccuracy is computed independently
// from the summed again/good/easy counts. The two figures can
// legitimately differ (sessions have different sizes) and both are part
// of the API.
type SessionAggregate struct {
	Sessions        int     `json:"sessions"`
	TotalCards      int     `json:"totalCards"`
	Again           int     `json:"again"`
	Good            int     `json:"good"`
	Easy            int     `json:"easy"`
	CoinsEarned     int     `json:"coinsEarned"`
	AverageAccuracy float64 `json:"averageAccuracy"`
	TotalAccuracy   float64 `json:"totalAccuracy"`
}
