package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema for the configured table prefix if it does
// not exist yet. Records are the unit of consistency: there are no
// foreign keys between items and categories on purpose (dangling
// category references are tolerated by the data model).
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			parent_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Categories),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			cost DOUBLE PRECISION,
			currency TEXT NOT NULL DEFAULT 'USD',
			dimensions JSONB NOT NULL DEFAULT '{}',
			attributes JSONB NOT NULL DEFAULT '{}',
			categories TEXT[] NOT NULL DEFAULT '{}',
			tags TEXT[] NOT NULL DEFAULT '{}',
			assets JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Items),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL DEFAULT 'image',
			url TEXT NOT NULL,
			alt TEXT NOT NULL DEFAULT '',
			width INTEGER,
			height INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Assets),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			item_id TEXT NOT NULL,
			grade TEXT NOT NULL,
			ts TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Grades),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_item_id_idx ON %s (item_id)`,
			tables.Grades, tables.Grades),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			total_cards INTEGER NOT NULL DEFAULT 0,
			again_count INTEGER NOT NULL DEFAULT 0,
			good_count INTEGER NOT NULL DEFAULT 0,
			easy_count INTEGER NOT NULL DEFAULT 0,
			accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			coins_earned INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.SessionStats),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			user_id UUID PRIMARY KEY,
			profile JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.UserProfiles),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
