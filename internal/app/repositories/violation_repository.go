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

// ErrViolationNotFound is returned when a violation is not found
var ErrViolationNotFound = ErrNotFound

// ViolationRepository handles disciplinary violation database operations
type ViolationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewViolationRepository creates a new ViolationRepository
func NewViolationRepository(db *pgxpool.Pool) *ViolationRepository {
	return &ViolationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const violationColumns = "id, date, student_name, reason, punishment, created_at, updated_at"

func scanViolation(row pgx.Row) (*models.Violation, error) {
	v := &models.Violation{}
	err := row.Scan(&v.ID, &v.Date, &v.StudentName, &v.Reason, &v.Punishment, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a new violation record
func (r *ViolationRepository) Create(ctx context.Context, violation *models.Violation) (int64, error) {
	sql, args, err := r.sb.Insert("violations").
		Columns("date", "student_name", "reason", "punishment").
		Values(violation.Date, violation.StudentName, violation.Reason, violation.Punishment).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create violation query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create violation query")
		return 0, fmt.Errorf("error creating violation: %w", err)
	}

	return id, nil
}

// GetByID retrieves a violation by id
func (r *ViolationRepository) GetByID(ctx context.Context, id int64) (*models.Violation, error) {
	sql, args, err := r.sb.Select(violationColumns).
		From("violations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get violation query: %w", err)
	}

	violation, err := scanViolation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrViolationNotFound
		}
		logger.Error().Err(err).Int64("violationID", id).Msg("Error scanning violation row")
		return nil, fmt.Errorf("error getting violation by ID: %w", err)
	}

	return violation, nil
}

// GetAll retrieves all violations, newest incident date first
func (r *ViolationRepository) GetAll(ctx context.Context) ([]*models.Violation, error) {
	sql, args, err := r.sb.Select(violationColumns).
		From("violations").
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all violations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all violations query")
		return nil, fmt.Errorf("error querying violations: %w", err)
	}
	defer rows.Close()

	violations := []*models.Violation{}
	for rows.Next() {
		violation, err := scanViolation(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning violation row")
			return nil, fmt.Errorf("error scanning violation row: %w", err)
		}
		violations = append(violations, violation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating violation rows: %w", err)
	}

	return violations, nil
}

// Update replaces all mutable fields of a violation
func (r *ViolationRepository) Update(ctx context.Context, violation *models.Violation) error {
	sql, args, err := r.sb.Update("violations").
		SetMap(map[string]interface{}{
			"date":         violation.Date,
			"student_name": violation.StudentName,
			"reason":       violation.Reason,
			"punishment":   violation.Punishment,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": violation.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update violation query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("violationID", violation.ID).Msg("Error updating violation")
		return fmt.Errorf("error updating violation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrViolationNotFound
	}

	return nil
}

// Delete removes a violation by id
func (r *ViolationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("violations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete violation query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("violationID", id).Msg("Error deleting violation")
		return fmt.Errorf("error deleting violation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrViolationNotFound
	}

	return nil
}
