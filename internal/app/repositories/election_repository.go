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
	"github.com/RohitShalgar4/campus360/internal/db"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// Election repository errors
var (
	ErrElectionNotFound  = ErrNotFound
	ErrCandidateNotFound = errors.New("candidate not found in this election")
	ErrBallotExists      = errors.New("student has already voted in this election")
)

// uniqueBallotConstraint guards one ballot per (election, student)
const uniqueBallotConstraint = "election_votes_election_id_student_id_key"

// ElectionRepository handles election database operations. Vote recording
// runs in a single transaction so the ballot row, the candidate tally and
// the turnout counters move together or not at all.
type ElectionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewElectionRepository creates a new ElectionRepository
func NewElectionRepository(db *pgxpool.Pool) *ElectionRepository {
	return &ElectionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const electionColumns = "id, title, description, deadline, level, department, year, total_voters, voted, boys_voted, girls_voted, department_stats, created_at, updated_at"

func scanElection(row pgx.Row) (*models.Election, error) {
	e := &models.Election{}
	var stats []byte
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Deadline, &e.Level, &e.Department,
		&e.Year, &e.TotalVoters, &e.Voted, &e.BoysVoted, &e.GirlsVoted, &stats,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stats, &e.DepartmentStats); err != nil {
		return nil, fmt.Errorf("error decoding department stats: %w", err)
	}
	return e, nil
}

// Create inserts an election together with its candidates in one transaction
func (r *ElectionRepository) Create(ctx context.Context, election *models.Election) (int64, error) {
	if election.DepartmentStats == nil {
		election.DepartmentStats = map[string]int{}
	}
	stats, err := json.Marshal(election.DepartmentStats)
	if err != nil {
		return 0, fmt.Errorf("error encoding department stats: %w", err)
	}

	var electionID int64
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("elections").
			Columns("title", "description", "deadline", "level", "department", "year",
				"total_voters", "department_stats").
			Values(election.Title, election.Description, election.Deadline, election.Level,
				election.Department, election.Year, election.TotalVoters, stats).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create election query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&electionID); err != nil {
			return fmt.Errorf("error creating election: %w", err)
		}

		for i := range election.Candidates {
			candidate := &election.Candidates[i]
			sql, args, err := r.sb.Insert("election_candidates").
				Columns("election_id", "name", "position").
				Values(electionID, candidate.Name, candidate.Position).
				Suffix("RETURNING id").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create candidate query: %w", err)
			}
			if err := tx.QueryRow(ctx, sql, args...).Scan(&candidate.ID); err != nil {
				return fmt.Errorf("error creating candidate: %w", err)
			}
			candidate.ElectionID = electionID
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error creating election")
		return 0, err
	}

	return electionID, nil
}

// GetByID retrieves an election with its candidates
func (r *ElectionRepository) GetByID(ctx context.Context, id int64) (*models.Election, error) {
	sql, args, err := r.sb.Select(electionColumns).
		From("elections").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get election query: %w", err)
	}

	election, err := scanElection(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrElectionNotFound
		}
		logger.Error().Err(err).Int64("electionID", id).Msg("Error scanning election row")
		return nil, fmt.Errorf("error getting election by ID: %w", err)
	}

	candidates, err := r.listCandidates(ctx, id)
	if err != nil {
		return nil, err
	}
	election.Candidates = candidates

	return election, nil
}

// GetAll retrieves all elections with their candidates, newest first
func (r *ElectionRepository) GetAll(ctx context.Context) ([]*models.Election, error) {
	sql, args, err := r.sb.Select(electionColumns).
		From("elections").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all elections query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all elections query")
		return nil, fmt.Errorf("error querying elections: %w", err)
	}
	defer rows.Close()

	elections := []*models.Election{}
	for rows.Next() {
		election, err := scanElection(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning election row")
			return nil, fmt.Errorf("error scanning election row: %w", err)
		}
		elections = append(elections, election)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating election rows: %w", err)
	}

	for _, election := range elections {
		candidates, err := r.listCandidates(ctx, election.ID)
		if err != nil {
			return nil, err
		}
		election.Candidates = candidates
	}

	return elections, nil
}

func (r *ElectionRepository) listCandidates(ctx context.Context, electionID int64) ([]models.Candidate, error) {
	sql, args, err := r.sb.Select("id, election_id, name, position, votes").
		From("election_candidates").
		Where(squirrel.Eq{"election_id": electionID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list candidates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("electionID", electionID).Msg("Error querying candidates")
		return nil, fmt.Errorf("error querying candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position, &c.Votes); err != nil {
			return nil, fmt.Errorf("error scanning candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidate rows: %w", err)
	}

	return candidates, nil
}

// GetCandidate retrieves a candidate scoped to an election
func (r *ElectionRepository) GetCandidate(ctx context.Context, electionID, candidateID int64) (*models.Candidate, error) {
	sql, args, err := r.sb.Select("id, election_id, name, position, votes").
		From("election_candidates").
		Where(squirrel.Eq{"id": candidateID, "election_id": electionID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get candidate query: %w", err)
	}

	var c models.Candidate
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position, &c.Votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCandidateNotFound
		}
		logger.Error().Err(err).Int64("candidateID", candidateID).Msg("Error scanning candidate row")
		return nil, fmt.Errorf("error getting candidate: %w", err)
	}

	return &c, nil
}

// HasVoted reports whether a ballot row exists for the student in this
// election
func (r *ElectionRepository) HasVoted(ctx context.Context, electionID, studentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("election_votes").
		Where(squirrel.Eq{"election_id": electionID, "student_id": studentID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build ballot existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Int64("electionID", electionID).Msg("Error checking ballot existence")
		return false, fmt.Errorf("error checking ballot existence: %w", err)
	}

	return exists, nil
}

// RecordVote writes the ballot row, bumps the candidate tally and moves
// the turnout counters in one transaction. A duplicate ballot maps to
// ErrBallotExists regardless of any stale pre-check.
func (r *ElectionRepository) RecordVote(ctx context.Context, electionID, candidateID int64, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("election_votes").
			Columns("election_id", "student_id", "candidate_id").
			Values(electionID, student.ID, candidateID).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build record ballot query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if IsDuplicateConstraintError(err, uniqueBallotConstraint) || isDuplicateKeyError(err) {
				return ErrBallotExists
			}
			return fmt.Errorf("error recording ballot: %w", err)
		}

		sql, args, err = r.sb.Update("election_candidates").
			Set("votes", squirrel.Expr("votes + 1")).
			Where(squirrel.Eq{"id": candidateID, "election_id": electionID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build candidate tally query: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating candidate tally: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCandidateNotFound
		}

		genderColumn := "boys_voted"
		if student.Gender == models.GenderFemale {
			genderColumn = "girls_voted"
		}
		counterSQL := fmt.Sprintf(`
			UPDATE elections
			SET voted = voted + 1,
			    %s = %s + 1,
			    department_stats = jsonb_set(
			        department_stats,
			        ARRAY[$2],
			        (COALESCE(department_stats->>$2, '0')::int + 1)::text::jsonb),
			    updated_at = NOW()
			WHERE id = $1`, genderColumn, genderColumn)
		cmdTag, err = tx.Exec(ctx, counterSQL, electionID, student.Department)
		if err != nil {
			return fmt.Errorf("error updating turnout counters: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrElectionNotFound
		}

		return nil
	})
}

// Delete removes an election; candidates and ballots go with it via
// ON DELETE CASCADE
func (r *ElectionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("elections").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete election query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("electionID", id).Msg("Error deleting election")
		return fmt.Errorf("error deleting election: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrElectionNotFound
	}

	return nil
}
