package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// Booking repository errors
var (
	ErrBookingNotFound = ErrNotFound
	ErrSlotTaken       = errors.New("facility already booked for this slot")
)

// uniqueLiveSlotIndex is the partial unique index over non-rejected
// bookings; violating it means the slot is already held.
const uniqueLiveSlotIndex = "bookings_live_slot_idx"

// BookingRepository handles booking database operations
type BookingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const bookingColumns = `b.id, b.facility_id, b.requested_by, b.date, b.slot, b.purpose,
	b.requirements, b.status, b.created_at, b.updated_at,
	f.name AS facility_name, s.first_name || ' ' || s.last_name AS student_name`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	b := &models.Booking{}
	var requirements []byte
	err := row.Scan(&b.ID, &b.FacilityID, &b.RequestedBy, &b.Date, &b.Slot, &b.Purpose,
		&requirements, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.FacilityName, &b.StudentName)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(requirements, &b.Requirements); err != nil {
		return nil, fmt.Errorf("error decoding booking requirements: %w", err)
	}
	return b, nil
}

// Create inserts a new booking. The insert itself is the slot-conflict
// check: a violation of the live-slot unique index maps to ErrSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) (int64, error) {
	if booking.Requirements == nil {
		booking.Requirements = map[string]interface{}{}
	}
	requirements, err := json.Marshal(booking.Requirements)
	if err != nil {
		return 0, fmt.Errorf("error encoding booking requirements: %w", err)
	}

	sql, args, err := r.sb.Insert("bookings").
		Columns("facility_id", "requested_by", "date", "slot", "purpose", "requirements", "status").
		Values(booking.FacilityID, booking.RequestedBy, booking.Date, booking.Slot,
			booking.Purpose, requirements, booking.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create booking query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if IsDuplicateConstraintError(err, uniqueLiveSlotIndex) {
			return 0, ErrSlotTaken
		}
		logger.Error().Err(err).Msg("Error executing create booking query")
		return 0, fmt.Errorf("error creating booking: %w", err)
	}

	return id, nil
}

func (r *BookingRepository) selectBookings() squirrel.SelectBuilder {
	return r.sb.Select(bookingColumns).
		From("bookings b").
		Join("facilities f ON f.id = b.facility_id").
		Join("students s ON s.id = b.requested_by")
}

// GetByID retrieves a booking with joined facility and student names
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	sql, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get booking query: %w", err)
	}

	booking, err := scanBooking(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.Error().Err(err).Int64("bookingID", id).Msg("Error scanning booking row")
		return nil, fmt.Errorf("error getting booking by ID: %w", err)
	}

	return booking, nil
}

// GetAll retrieves all bookings, newest first
func (r *BookingRepository) GetAll(ctx context.Context) ([]*models.Booking, error) {
	sql, args, err := r.selectBookings().
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all bookings query: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

// ListByStudent retrieves the bookings a student has requested, newest first
func (r *BookingRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error) {
	sql, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.requested_by": studentID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list bookings by student query: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

func (r *BookingRepository) queryBookings(ctx context.Context, sql string, args []interface{}) ([]*models.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing bookings query")
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning booking row")
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// UpdateStatus sets a booking's status. Re-approving a slot that another
// booking took in the meantime trips the live-slot index and maps to
// ErrSlotTaken.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	sql, args, err := r.sb.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update booking status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if IsDuplicateConstraintError(err, uniqueLiveSlotIndex) {
			return ErrSlotTaken
		}
		logger.Error().Err(err).Int64("bookingID", id).Msg("Error updating booking status")
		return fmt.Errorf("error updating booking status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking by id
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete booking query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookingID", id).Msg("Error deleting booking")
		return fmt.Errorf("error deleting booking: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}
