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

// Student repository errors
var (
	ErrStudentNotFound    = ErrNotFound
	ErrEmailAlreadyExists = errors.New("Email already exists")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, first_name, last_name, email, password, class_name, department, year, gender, registration_no, created_at, updated_at"

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Password,
		&s.ClassName, &s.Department, &s.Year, &s.Gender, &s.RegistrationNo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student; a duplicate email maps to ErrEmailAlreadyExists
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("first_name", "last_name", "email", "password", "class_name", "department", "year", "gender", "registration_no").
		Values(student.FirstName, student.LastName, student.Email, student.Password,
			student.ClassName, student.Department, student.Year, student.Gender, student.RegistrationNo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by email query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return student, nil
}

// EmailExists reports whether a student row already holds the email
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student email existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("email", email).Msg("Error checking student email existence")
		return false, fmt.Errorf("error checking student email existence: %w", err)
	}

	return exists, nil
}

// UpdatePassword sets a new password hash; the only identity mutation
// after registration
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("students").
		Set("password", hashedPassword).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student password")
		return fmt.Errorf("error updating student password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// CountByScope counts students matching an election scope. Empty
// department matches all departments; zero year matches all years.
func (r *StudentRepository) CountByScope(ctx context.Context, department string, year int) (int, error) {
	query := r.sb.Select("COUNT(*)").From("students")
	if department != "" {
		query = query.Where(squirrel.Eq{"department": department})
	}
	if year > 0 {
		query = query.Where(squirrel.Eq{"year": year})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}
