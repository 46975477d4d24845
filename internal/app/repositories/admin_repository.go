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

// ErrAdminNotFound is returned when an admin is not found
var ErrAdminNotFound = ErrNotFound

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const adminColumns = "id, full_name, email, password, designation, created_at, updated_at"

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Password, &a.Designation, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin; a duplicate email maps to ErrEmailAlreadyExists
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("full_name", "email", "password", "designation").
		Values(admin.FullName, admin.Email, admin.Password, admin.Designation).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// GetByID retrieves an admin by id
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by ID: %w", err)
	}

	return admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns).
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin by email query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by email: %w", err)
	}

	return admin, nil
}

// EmailExists reports whether an admin row already holds the email
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin email existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("email", email).Msg("Error checking admin email existence")
		return false, fmt.Errorf("error checking admin email existence: %w", err)
	}

	return exists, nil
}

// UpdatePassword sets a new password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("admins").
		Set("password", hashedPassword).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update admin password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("adminID", id).Msg("Error updating admin password")
		return fmt.Errorf("error updating admin password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}

	return nil
}
