package repositories

import (
	"context"

	"designvault/internal/domain/models"
)

// GradeRepository stores the append-only grade ledger
type GradeRepository interface {
	// Create appends a grade record
	Create(ctx context.Context, grade *models.Grade) error

	// ListByItem retrieves all grades for one item, oldest first
	ListByItem(ctx context.Context, itemID string) ([]models.Grade, error)

	// ListAll retrieves the entire ledger, oldest first
	ListAll(ctx context.Context) ([]models.Grade, error)

	// DeleteAll clears the ledger (bulk reset)
	DeleteAll(ctx context.Context) error
}

// SessionStatRepository stores per-session study summaries
type SessionStatRepository interface {
	// Create appends a session stat record
	Create(ctx context.Context, stat *models.SessionStat) error

	// ListAll retrieves all session stats, oldest first
	ListAll(ctx context.Context) ([]models.SessionStat, error)
}
