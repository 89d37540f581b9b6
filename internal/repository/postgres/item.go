package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// PostgresItemRepository implements the ItemRepository interface
type PostgresItemRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewItemRepository creates a new item repository
func NewItemRepository(config *RepositoryConfig) repositories.ItemRepository {
	return &PostgresItemRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new item
func (r *PostgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	assets, err := json.Marshal(item.Assets)
	if err != nil {
		return fmt.Errorf("encode assets: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, kind, description, cost, currency, dimensions, attributes, categories, tags, assets, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	_, err = executor.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Kind,
		item.Description,
		item.Cost,
		item.Currency,
		item.Dimensions,
		item.Attributes,
		item.Categories,
		item.Tags,
		assets,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by ID
func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := fmt.Sprintf(`
		SELECT id, name, kind, description, cost, currency, dimensions, attributes, categories, tags, assets, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	row := executor.QueryRow(ctx, query, id)

	item, err := scanItem(row)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}

// Update persists the full item record
func (r *PostgresItemRepository) Update(ctx context.Context, item *models.Item) error {
	assets, err := json.Marshal(item.Assets)
	if err != nil {
		return fmt.Errorf("encode assets: %w", err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, kind = $2, description = $3, cost = $4, currency = $5,
		    dimensions = $6, attributes = $7, categories = $8, tags = $9,
		    assets = $10, updated_at = $11
		WHERE id = $12
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		item.Name,
		item.Kind,
		item.Description,
		item.Cost,
		item.Currency,
		item.Dimensions,
		item.Attributes,
		item.Categories,
		item.Tags,
		assets,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", item.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an item unconditionally
func (r *PostgresItemRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListAll retrieves all items in creation order
func (r *PostgresItemRepository) ListAll(ctx context.Context) ([]models.Item, error) {
	query := fmt.Sprintf(`
		SELECT id, name, kind, description, cost, currency, dimensions, attributes, categories, tags, assets, created_at, updated_at
		FROM %s
		ORDER BY created_at ASC
	`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

// DeleteAll clears the item collection
func (r *PostgresItemRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, r.tables.Items)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}

	return nil
}

// CountByCategory counts items whose categories set contains the id
func (r *PostgresItemRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE $1 = ANY(categories)`, r.tables.Items)

	var count int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items by category: %w", err)
	}

	return count, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var assets []byte

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Kind,
		&item.Description,
		&item.Cost,
		&item.Currency,
		&item.Dimensions,
		&item.Attributes,
		&item.Categories,
		&item.Tags,
		&assets,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Assets = make([]models.Asset, 0)
	if len(assets) > 0 {
		if err := json.Unmarshal(assets, &item.Assets); err != nil {
			return nil, fmt.Errorf("decode assets: %w", err)
		}
	}

	return &item, nil
}
