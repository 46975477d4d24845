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

// CC repository errors
var (
	ErrCCNotFound      = ErrNotFound
	ErrCCAlreadyExists = errors.New("a coordinator already exists for this class and department")
)

// CCRepository handles class-coordinator contact database operations
type CCRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCCRepository creates a new CCRepository
func NewCCRepository(db *pgxpool.Pool) *CCRepository {
	return &CCRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const ccColumns = "id, class_name, department, name, email, created_at, updated_at"

func scanCC(row pgx.Row) (*models.CC, error) {
	c := &models.CC{}
	err := row.Scan(&c.ID, &c.ClassName, &c.Department, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a coordinator contact; a duplicate (class, department)
// pair maps to ErrCCAlreadyExists
func (r *CCRepository) Create(ctx context.Context, cc *models.CC) (int64, error) {
	sql, args, err := r.sb.Insert("class_coordinators").
		Columns("class_name", "department", "name", "email").
		Values(cc.ClassName, cc.Department, cc.Name, cc.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create coordinator query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrCCAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create coordinator query")
		return 0, fmt.Errorf("error creating coordinator: %w", err)
	}

	return id, nil
}

// GetByID retrieves a coordinator by id
func (r *CCRepository) GetByID(ctx context.Context, id int64) (*models.CC, error) {
	sql, args, err := r.sb.Select(ccColumns).
		From("class_coordinators").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get coordinator query: %w", err)
	}

	cc, err := scanCC(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCCNotFound
		}
		logger.Error().Err(err).Int64("ccID", id).Msg("Error scanning coordinator row")
		return nil, fmt.Errorf("error getting coordinator by ID: %w", err)
	}

	return cc, nil
}

// GetByClassAndDepartment resolves the notification target for a class
func (r *CCRepository) GetByClassAndDepartment(ctx context.Context, className, department string) (*models.CC, error) {
	sql, args, err := r.sb.Select(ccColumns).
		From("class_coordinators").
		Where(squirrel.Eq{"class_name": className, "department": department}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get coordinator by class query: %w", err)
	}

	cc, err := scanCC(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCCNotFound
		}
		logger.Error().Err(err).Str("className", className).Str("department", department).
			Msg("Error scanning coordinator row")
		return nil, fmt.Errorf("error getting coordinator by class: %w", err)
	}

	return cc, nil
}

// GetAll retrieves all coordinator contacts ordered by department then class
func (r *CCRepository) GetAll(ctx context.Context) ([]*models.CC, error) {
	sql, args, err := r.sb.Select(ccColumns).
		From("class_coordinators").
		OrderBy("department ASC", "class_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all coordinators query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all coordinators query")
		return nil, fmt.Errorf("error querying coordinators: %w", err)
	}
	defer rows.Close()

	ccs := []*models.CC{}
	for rows.Next() {
		cc, err := scanCC(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning coordinator row")
			return nil, fmt.Errorf("error scanning coordinator row: %w", err)
		}
		ccs = append(ccs, cc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coordinator rows: %w", err)
	}

	return ccs, nil
}

// Update replaces all mutable fields of a coordinator contact
func (r *CCRepository) Update(ctx context.Context, cc *models.CC) error {
	sql, args, err := r.sb.Update("class_coordinators").
		SetMap(map[string]interface{}{
			"class_name": cc.ClassName,
			"department": cc.Department,
			"name":       cc.Name,
			"email":      cc.Email,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update coordinator query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrCCAlreadyExists
		}
		logger.Error().Err(err).Int64("ccID", cc.ID).Msg("Error updating coordinator")
		return fmt.Errorf("error updating coordinator: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCCNotFound
	}

	return nil
}

// Delete removes a coordinator contact by id
func (r *CCRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("class_coordinators").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete coordinator query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("ccID", id).Msg("Error deleting coordinator")
		return fmt.Errorf("error deleting coordinator: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCCNotFound
	}

	return nil
}
