package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// Budget repository errors
var (
	ErrCategoryNotFound      = ErrNotFound
	ErrCategoryAlreadyExists = errors.New("budget category already exists")
)

// BudgetCategoryRepository handles budget category database operations.
// Spent is maintained two ways: atomic increments on expense writes and
// a full recompute from the expenses table on demand.
type BudgetCategoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBudgetCategoryRepository creates a new BudgetCategoryRepository
func NewBudgetCategoryRepository(db *pgxpool.Pool) *BudgetCategoryRepository {
	return &BudgetCategoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const budgetCategoryColumns = "id, name, allocated, spent, created_at, updated_at"

func scanBudgetCategory(row pgx.Row) (*models.BudgetCategory, error) {
	c := &models.BudgetCategory{}
	err := row.Scan(&c.ID, &c.Name, &c.Allocated, &c.Spent, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Remaining = c.Allocated - c.Spent
	return c, nil
}

// Create inserts a new budget category; a duplicate name maps to
// ErrCategoryAlreadyExists
func (r *BudgetCategoryRepository) Create(ctx context.Context, category *models.BudgetCategory) (int64, error) {
	sql, args, err := r.sb.Insert("budget_categories").
		Columns("name", "allocated", "spent").
		Values(category.Name, category.Allocated, category.Spent).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create budget category query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrCategoryAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create budget category query")
		return 0, fmt.Errorf("error creating budget category: %w", err)
	}

	return id, nil
}

// GetByID retrieves a budget category by id
func (r *BudgetCategoryRepository) GetByID(ctx context.Context, id int64) (*models.BudgetCategory, error) {
	sql, args, err := r.sb.Select(budgetCategoryColumns).
		From("budget_categories").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get budget category query: %w", err)
	}

	category, err := scanBudgetCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		logger.Error().Err(err).Int64("categoryID", id).Msg("Error scanning budget category row")
		return nil, fmt.Errorf("error getting budget category by ID: %w", err)
	}

	return category, nil
}

// GetByName retrieves a budget category by its name
func (r *BudgetCategoryRepository) GetByName(ctx context.Context, name string) (*models.BudgetCategory, error) {
	sql, args, err := r.sb.Select(budgetCategoryColumns).
		From("budget_categories").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get budget category by name query: %w", err)
	}

	category, err := scanBudgetCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning budget category row")
		return nil, fmt.Errorf("error getting budget category by name: %w", err)
	}

	return category, nil
}

// GetAll retrieves all budget categories ordered by name
func (r *BudgetCategoryRepository) GetAll(ctx context.Context) ([]*models.BudgetCategory, error) {
	sql, args, err := r.sb.Select(budgetCategoryColumns).
		From("budget_categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all budget categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all budget categories query")
		return nil, fmt.Errorf("error querying budget categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.BudgetCategory{}
	for rows.Next() {
		category, err := scanBudgetCategory(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning budget category row")
			return nil, fmt.Errorf("error scanning budget category row: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget category rows: %w", err)
	}

	return categories, nil
}

// UpdateAllocation sets a new allocated amount for a category
func (r *BudgetCategoryRepository) UpdateAllocation(ctx context.Context, id int64, allocated float64) error {
	sql, args, err := r.sb.Update("budget_categories").
		Set("allocated", allocated).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update budget allocation query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("categoryID", id).Msg("Error updating budget allocation")
		return fmt.Errorf("error updating budget allocation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// AdjustSpent atomically adds delta to a category's spent counter.
// Negative deltas roll expense amounts back on delete or recategorize.
func (r *BudgetCategoryRepository) AdjustSpent(ctx context.Context, name string, delta float64) error {
	sql, args, err := r.sb.Update("budget_categories").
		Set("spent", squirrel.Expr("spent + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build adjust spent query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("category", name).Msg("Error adjusting spent amount")
		return fmt.Errorf("error adjusting spent amount: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// RecomputeSpent rewrites every category's spent counter from the sum of
// its expenses. Run after bulk edits so the rollups cannot drift.
func (r *BudgetCategoryRepository) RecomputeSpent(ctx context.Context) error {
	const sql = `
		UPDATE budget_categories bc
		SET spent = COALESCE(
			(SELECT SUM(e.amount) FROM expenses e WHERE e.category = bc.name), 0),
		    updated_at = NOW()`

	if _, err := r.db.Exec(ctx, sql); err != nil {
		logger.Error().Err(err).Msg("Error recomputing spent amounts")
		return fmt.Errorf("error recomputing spent amounts: %w", err)
	}

	return nil
}

// Delete removes a budget category by id
func (r *BudgetCategoryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("budget_categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete budget category query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("categoryID", id).Msg("Error deleting budget category")
		return fmt.Errorf("error deleting budget category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
