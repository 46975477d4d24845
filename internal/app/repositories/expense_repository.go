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

// ErrExpenseNotFound is returned when an expense is not found
var ErrExpenseNotFound = ErrNotFound

// ExpenseRepository handles expense database operations
type ExpenseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const expenseColumns = "id, title, description, amount, category, date, receipt_url, receipt_public_id, added_by, created_at, updated_at"

func scanExpense(row pgx.Row) (*models.Expense, error) {
	e := &models.Expense{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Amount, &e.Category, &e.Date,
		&e.ReceiptURL, &e.ReceiptPublicID, &e.AddedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new expense
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) (int64, error) {
	sql, args, err := r.sb.Insert("expenses").
		Columns("title", "description", "amount", "category", "date", "receipt_url", "receipt_public_id", "added_by").
		Values(expense.Title, expense.Description, expense.Amount, expense.Category, expense.Date,
			expense.ReceiptURL, expense.ReceiptPublicID, expense.AddedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create expense query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create expense query")
		return 0, fmt.Errorf("error creating expense: %w", err)
	}

	return id, nil
}

// GetByID retrieves an expense by id
func (r *ExpenseRepository) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	sql, args, err := r.sb.Select(expenseColumns).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get expense query: %w", err)
	}

	expense, err := scanExpense(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		logger.Error().Err(err).Int64("expenseID", id).Msg("Error scanning expense row")
		return nil, fmt.Errorf("error getting expense by ID: %w", err)
	}

	return expense, nil
}

// GetAll retrieves all expenses, newest expense date first
func (r *ExpenseRepository) GetAll(ctx context.Context) ([]*models.Expense, error) {
	sql, args, err := r.sb.Select(expenseColumns).
		From("expenses").
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all expenses query: %w", err)
	}

	return r.queryExpenses(ctx, sql, args)
}

// ListByCategory retrieves the expenses charged against a category name
func (r *ExpenseRepository) ListByCategory(ctx context.Context, category string) ([]*models.Expense, error) {
	sql, args, err := r.sb.Select(expenseColumns).
		From("expenses").
		Where(squirrel.Eq{"category": category}).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list expenses by category query: %w", err)
	}

	return r.queryExpenses(ctx, sql, args)
}

func (r *ExpenseRepository) queryExpenses(ctx context.Context, sql string, args []interface{}) ([]*models.Expense, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing expenses query")
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning expense row")
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return expenses, nil
}

// Update replaces all mutable fields of an expense
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	sql, args, err := r.sb.Update("expenses").
		SetMap(map[string]interface{}{
			"title":             expense.Title,
			"description":       expense.Description,
			"amount":            expense.Amount,
			"category":          expense.Category,
			"date":              expense.Date,
			"receipt_url":       expense.ReceiptURL,
			"receipt_public_id": expense.ReceiptPublicID,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": expense.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update expense query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("expenseID", expense.ID).Msg("Error updating expense")
		return fmt.Errorf("error updating expense: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense by id
func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("expenses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete expense query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("expenseID", id).Msg("Error deleting expense")
		return fmt.Errorf("error deleting expense: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
