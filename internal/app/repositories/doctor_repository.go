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

// ErrDoctorNotFound is returned when a doctor is not found
var ErrDoctorNotFound = ErrNotFound

// DoctorRepository handles doctor database operations
type DoctorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const doctorColumns = "id, full_name, email, password, qualification, created_at, updated_at"

func scanDoctor(row pgx.Row) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := row.Scan(&d.ID, &d.FullName, &d.Email, &d.Password, &d.Qualification, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create inserts a new doctor; a duplicate email maps to ErrEmailAlreadyExists
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (int64, error) {
	sql, args, err := r.sb.Insert("doctors").
		Columns("full_name", "email", "password", "qualification").
		Values(doctor.FullName, doctor.Email, doctor.Password, doctor.Qualification).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create doctor query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create doctor query")
		return 0, fmt.Errorf("error creating doctor: %w", err)
	}

	return id, nil
}

// GetByID retrieves a doctor by id
func (r *DoctorRepository) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	sql, args, err := r.sb.Select(doctorColumns).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get doctor query: %w", err)
	}

	doctor, err := scanDoctor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		logger.Error().Err(err).Int64("doctorID", id).Msg("Error scanning doctor row")
		return nil, fmt.Errorf("error getting doctor by ID: %w", err)
	}

	return doctor, nil
}

// GetByEmail retrieves a doctor by email
func (r *DoctorRepository) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	sql, args, err := r.sb.Select(doctorColumns).
		From("doctors").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get doctor by email query: %w", err)
	}

	doctor, err := scanDoctor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning doctor row")
		return nil, fmt.Errorf("error getting doctor by email: %w", err)
	}

	return doctor, nil
}

// EmailExists reports whether a doctor row already holds the email
func (r *DoctorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("doctors").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build doctor email existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("email", email).Msg("Error checking doctor email existence")
		return false, fmt.Errorf("error checking doctor email existence: %w", err)
	}

	return exists, nil
}

// UpdatePassword sets a new password hash
func (r *DoctorRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("doctors").
		Set("password", hashedPassword).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update doctor password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("doctorID", id).Msg("Error updating doctor password")
		return fmt.Errorf("error updating doctor password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}

	return nil
}
