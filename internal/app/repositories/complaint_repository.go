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

// ErrComplaintNotFound is returned when a complaint is not found
var ErrComplaintNotFound = ErrNotFound

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const complaintColumns = "id, title, description, category, status, votes, image_url, image_public_id, created_at, updated_at"

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	c := &models.Complaint{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.Status, &c.Votes,
		&c.ImageURL, &c.ImagePublicID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) (int64, error) {
	sql, args, err := r.sb.Insert("complaints").
		Columns("title", "description", "category", "status", "votes", "image_url", "image_public_id").
		Values(complaint.Title, complaint.Description, complaint.Category,
			complaint.Status, complaint.Votes, complaint.ImageURL, complaint.ImagePublicID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create complaint query")
		return 0, fmt.Errorf("error creating complaint: %w", err)
	}

	return id, nil
}

// GetByID retrieves a complaint by id
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	complaint, err := scanComplaint(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error scanning complaint row")
		return nil, fmt.Errorf("error getting complaint by ID: %w", err)
	}

	return complaint, nil
}

// GetAll retrieves all complaints, most upvoted first
func (r *ComplaintRepository) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		OrderBy("votes DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning complaint row")
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// Upvote atomically increments a complaint's vote counter and returns the
// new count
func (r *ComplaintRepository) Upvote(ctx context.Context, id int64) (int, error) {
	sql, args, err := r.sb.Update("complaints").
		Set("votes", squirrel.Expr("votes + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING votes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upvote complaint query: %w", err)
	}

	var votes int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&votes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error upvoting complaint")
		return 0, fmt.Errorf("error upvoting complaint: %w", err)
	}

	return votes, nil
}

// UpdateStatus sets a complaint's status
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) error {
	sql, args, err := r.sb.Update("complaints").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update complaint status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error updating complaint status")
		return fmt.Errorf("error updating complaint status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrComplaintNotFound
	}

	return nil
}

// Delete removes a complaint by id
func (r *ComplaintRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("complaints").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete complaint query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error deleting complaint")
		return fmt.Errorf("error deleting complaint: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrComplaintNotFound
	}

	return nil
}
