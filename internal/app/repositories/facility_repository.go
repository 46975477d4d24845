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

// Facility repository errors
var (
	ErrFacilityNotFound      = ErrNotFound
	ErrFacilityAlreadyExists = errors.New("facility with this name already exists")
)

// FacilityRepository handles facility database operations. The dynamic
// requirement-field descriptors and the availability list are JSONB
// columns marshaled explicitly on write.
type FacilityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacilityRepository creates a new FacilityRepository
func NewFacilityRepository(db *pgxpool.Pool) *FacilityRepository {
	return &FacilityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFacility(row pgx.Row) (*models.Facility, error) {
	f := &models.Facility{}
	var reqFields, availability []byte
	err := row.Scan(&f.ID, &f.Name, &f.Capacity, &f.Location, &reqFields, &availability,
		&f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reqFields, &f.RequirementFields); err != nil {
		return nil, fmt.Errorf("error decoding requirement fields: %w", err)
	}
	if err := json.Unmarshal(availability, &f.Availability); err != nil {
		return nil, fmt.Errorf("error decoding availability: %w", err)
	}
	return f, nil
}

func marshalFacilityJSON(facility *models.Facility) (reqFields, availability []byte, err error) {
	if facility.RequirementFields == nil {
		facility.RequirementFields = []models.RequirementField{}
	}
	if facility.Availability == nil {
		facility.Availability = []models.AvailabilityEntry{}
	}
	reqFields, err = json.Marshal(facility.RequirementFields)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding requirement fields: %w", err)
	}
	availability, err = json.Marshal(facility.Availability)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding availability: %w", err)
	}
	return reqFields, availability, nil
}

// Create inserts a new facility; a duplicate name maps to ErrFacilityAlreadyExists
func (r *FacilityRepository) Create(ctx context.Context, facility *models.Facility) (int64, error) {
	reqFields, availability, err := marshalFacilityJSON(facility)
	if err != nil {
		return 0, err
	}

	sql, args, err := r.sb.Insert("facilities").
		Columns("name", "capacity", "location", "requirement_fields", "availability", "status").
		Values(facility.Name, facility.Capacity, facility.Location, reqFields, availability, facility.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create facility query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrFacilityAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create facility query")
		return 0, fmt.Errorf("error creating facility: %w", err)
	}

	return id, nil
}

const facilityColumns = "id, name, capacity, location, requirement_fields, availability, status, created_at, updated_at"

// GetByID retrieves a facility by id
func (r *FacilityRepository) GetByID(ctx context.Context, id int64) (*models.Facility, error) {
	sql, args, err := r.sb.Select(facilityColumns).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get facility query: %w", err)
	}

	facility, err := scanFacility(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		logger.Error().Err(err).Int64("facilityID", id).Msg("Error scanning facility row")
		return nil, fmt.Errorf("error getting facility by ID: %w", err)
	}

	return facility, nil
}

// buildFacilityListQuery builds the public listing query. Only active
// facilities are exposed on the unauthenticated list.
func buildFacilityListQuery(sb squirrel.StatementBuilderType) (string, []interface{}, error) {
	return sb.Select(facilityColumns).
		From("facilities").
		Where(squirrel.Eq{"status": models.FacilityActive}).
		OrderBy("name ASC").
		ToSql()
}

// GetAll retrieves all active facilities ordered by name
func (r *FacilityRepository) GetAll(ctx context.Context) ([]*models.Facility, error) {
	sql, args, err := buildFacilityListQuery(r.sb)
	if err != nil {
		return nil, fmt.Errorf("failed to build get all facilities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all facilities query")
		return nil, fmt.Errorf("error querying facilities: %w", err)
	}
	defer rows.Close()

	facilities := []*models.Facility{}
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning facility row during get all")
			return nil, fmt.Errorf("error scanning facility row: %w", err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facility rows: %w", err)
	}

	return facilities, nil
}

// Update replaces all mutable fields of a facility
func (r *FacilityRepository) Update(ctx context.Context, facility *models.Facility) error {
	reqFields, availability, err := marshalFacilityJSON(facility)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("facilities").
		SetMap(map[string]interface{}{
			"name":               facility.Name,
			"capacity":           facility.Capacity,
			"location":           facility.Location,
			"requirement_fields": reqFields,
			"availability":       availability,
			"status":             facility.Status,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": facility.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update facility query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrFacilityAlreadyExists
		}
		logger.Error().Err(err).Int64("facilityID", facility.ID).Msg("Error executing update facility query")
		return fmt.Errorf("error updating facility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

// Delete removes a facility by id
func (r *FacilityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete facility query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facilityID", id).Msg("Error executing delete facility query")
		return fmt.Errorf("error deleting facility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFacilityNotFound
	}

	return nil
}
