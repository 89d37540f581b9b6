package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// PostgresLooseAssetRepository implements the LooseAssetRepository interface
type PostgresLooseAssetRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewLooseAssetRepository creates a new loose asset repository
func NewLooseAssetRepository(config *RepositoryConfig) repositories.LooseAssetRepository {
	return &PostgresLooseAssetRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts ingested asset metadata
func (r *PostgresLooseAssetRepository) Create(ctx context.Context, asset *models.LooseAsset) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, kind, url, alt, width, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Assets)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		asset.ID,
		asset.Kind,
		asset.URL,
		asset.Alt,
		asset.Width,
		asset.Height,
		asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create asset: %w", err)
	}

	return nil
}

// ListAll retrieves all ingested assets
func (r *PostgresLooseAssetRepository) ListAll(ctx context.Context) ([]models.LooseAsset, error) {
	query := fmt.Sprintf(`
		SELECT id, kind, url, alt, width, height, created_at
		FROM %s
		ORDER BY created_at ASC
	`, r.tables.Assets)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]models.LooseAsset, 0)
	for rows.Next() {
		var asset models.LooseAsset
		err := rows.Scan(
			&asset.ID,
			&asset.Kind,
			&asset.URL,
			&asset.Alt,
			&asset.Width,
			&asset.Height,
			&asset.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	return assets, nil
}
