package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// PostgresGradeRepository implements the GradeRepository interface
type PostgresGradeRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(config *RepositoryConfig) repositories.GradeRepository {
	return &PostgresGradeRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends a grade record
func (r *PostgresGradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, item_id, grade, ts, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Grades)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		grade.ID,
		grade.ItemID,
		grade.Grade,
		grade.Timestamp,
		grade.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create grade: %w", err)
	}

	return nil
}

// ListByItem retrieves all grades for one item, oldest first
func (r *PostgresGradeRepository) ListByItem(ctx context.Context, itemID string) ([]models.Grade, error) {
	query := fmt.Sprintf(`
		SELECT id, item_id, grade, ts, created_at
		FROM %s
		WHERE item_id = $1
		ORDER BY ts ASC
	`, r.tables.Grades)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	defer rows.Close()

	return scanGrades(rows)
}

// ListAll retrieves the entire ledger, oldest first
func (r *PostgresGradeRepository) ListAll(ctx context.Context) ([]models.Grade, error) {
	query := fmt.Sprintf(`
		SELECT id, item_id, grade, ts, created_at
		FROM %s
		ORDER BY ts ASC
	`, r.tables.Grades)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	defer rows.Close()

	return scanGrades(rows)
}

// DeleteAll clears the ledger
func (r *PostgresGradeRepository) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE FROM %s`, r.tables.Grades)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query); err != nil {
		return fmt.Errorf("delete all grades: %w", err)
	}

	return nil
}

func scanGrades(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]models.Grade, error) {
	grades := make([]models.Grade, 0)
	for rows.Next() {
		var grade models.Grade
		err := rows.Scan(
			&grade.ID,
			&grade.ItemID,
			&grade.Grade,
			&grade.Timestamp,
			&grade.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}

	return grades, nil
}

// PostgresSessionStatRepository implements the SessionStatRepository interface
type PostgresSessionStatRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSessionStatRepository creates a new session stat repository
func NewSessionStatRepository(config *RepositoryConfig) repositories.SessionStatRepository {
	return &PostgresSessionStatRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends a session stat record
func (r *PostgresSessionStatRepository) Create(ctx context.Context, stat *models.SessionStat) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, mode, total_cards, again_count, good_count, easy_count, accuracy, duration_seconds, coins_earned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, r.tables.SessionStats)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		stat.ID,
		stat.Mode,
		stat.TotalCards,
		stat.Again,
		stat.Good,
		stat.Easy,
		stat.Accuracy,
		stat.DurationSeconds,
		stat.CoinsEarned,
		stat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create session stat: %w", err)
	}

	return nil
}

// ListAll retrieves all session stats, oldest first
func (r *PostgresSessionStatRepository) ListAll(ctx context.Context) ([]models.SessionStat, error) {
	query := fmt.Sprintf(`
		SELECT id, mode, total_cards, again_count, good_count, easy_count, accuracy, duration_seconds, coins_earned, created_at
		FROM %s
		ORDER BY created_at ASC
	`, r.tables.SessionStats)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list session stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.SessionStat, 0)
	for rows.Next() {
		var stat models.SessionStat
		err := rows.Scan(
			&stat.ID,
			&stat.Mode,
			&stat.TotalCards,
			&stat.Again,
			&stat.Good,
			&stat.Easy,
			&stat.Accuracy,
			&stat.DurationSeconds,
			&stat.CoinsEarned,
			&stat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list session stats: %w", err)
	}

	return stats, nil
}
