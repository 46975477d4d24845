package services

import (
	"context"
	"errors"
	"time"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// ElectionService handles student elections and voting
type ElectionService interface {
	Create(ctx context.Context, req *dto.CreateElectionRequest) (*models.Election, error)
	GetByID(ctx context.Context, id int64, studentID int64) (*dto.ElectionResponse, error)
	GetAll(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error)
	Vote(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error)
	Delete(ctx context.Context, id int64) error
}

type electionService struct {
	electionRepo *repositories.ElectionRepository
	studentRepo  *repositories.StudentRepository
}

// NewElectionService creates a new ElectionService
func NewElectionService(
	electionRepo *repositories.ElectionRepository,
	studentRepo *repositories.StudentRepository,
) ElectionService {
	return &electionService{
		electionRepo: electionRepo,
		studentRepo:  studentRepo,
	}
}

// Create validates the scope fields against the level, counts the eligible
// electorate and inserts the election with its candidates
func (s *electionService) Create(ctx context.Context, req *dto.CreateElectionRequest) (*models.Election, error) {
	if !models.ValidElectionLevel(req.Level) {
		return nil, apperrors.NewValidationError("invalid election level")
	}
	if req.Deadline.Before(time.Now()) {
		return nil, apperrors.NewValidationError("deadline must be in the future")
	}

	switch req.Level {
	case models.LevelDepartmental:
		if req.Department == nil || *req.Department == "" {
			return nil, apperrors.NewValidationError("department is required for departmental elections")
		}
	case models.LevelClass:
		if req.Department == nil || *req.Department == "" {
			return nil, apperrors.NewValidationError("department is required for class elections")
		}
		if req.Year == nil || *req.Year <= 0 {
			return nil, apperrors.NewValidationError("year is required for class elections")
		}
	}

	department := ""
	if req.Level != models.LevelCollege && req.Department != nil {
		department = *req.Department
	}
	year := 0
	if req.Level == models.LevelClass && req.Year != nil {
		year = *req.Year
	}

	totalVoters, err := s.studentRepo.CountByScope(ctx, department, year)
	if err != nil {
		return nil, err
	}

	election := &models.Election{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Level:       req.Level,
		TotalVoters: totalVoters,
	}
	if req.Level != models.LevelCollege {
		election.Department = req.Department
	}
	if req.Level == models.LevelClass {
		election.Year = req.Year
	}
	for _, c := range req.Candidates {
		election.Candidates = append(election.Candidates, models.Candidate{
			Name:     c.Name,
			Position: c.Position,
		})
	}

	id, err := s.electionRepo.Create(ctx, election)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("electionID", id).Str("level", string(req.Level)).
		Int("totalVoters", totalVoters).Msg("Election created")

	created, err := s.electionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *electionService) GetByID(ctx context.Context, id int64, studentID int64) (*dto.ElectionResponse, error) {
	election, err := s.electionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, err
	}
	return s.decorate(ctx, election, studentID)
}

func (s *electionService) GetAll(ctx context.Context, studentID int64) ([]*dto.ElectionResponse, error) {
	elections, err := s.electionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ElectionResponse, 0, len(elections))
	for _, election := range elections {
		resp, err := s.decorate(ctx, election, studentID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// decorate adds the caller's voting state. Non-student callers always see
// hasVoted false.
func (s *electionService) decorate(ctx context.Context, election *models.Election, studentID int64) (*dto.ElectionResponse, error) {
	resp := &dto.ElectionResponse{Election: *election}
	if studentID > 0 {
		voted, err := s.electionRepo.HasVoted(ctx, election.ID, studentID)
		if err != nil {
			return nil, err
		}
		resp.HasVoted = voted
	}
	return resp, nil
}

// Vote records the authenticated student's ballot. Double voting is caught
// by the ballot table's unique constraint, not by the preceding read.
func (s *electionService) Vote(ctx context.Context, electionID, candidateID, studentID int64) (*dto.ElectionResponse, error) {
	election, err := s.electionRepo.GetByID(ctx, electionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, err
	}

	if election.Closed(time.Now()) {
		return nil, apperrors.ErrElectionClosed
	}

	if _, err := s.electionRepo.GetCandidate(ctx, electionID, candidateID); err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	if err := s.electionRepo.RecordVote(ctx, electionID, candidateID, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrBallotExists):
			return nil, apperrors.ErrAlreadyVoted
		case errors.Is(err, repositories.ErrCandidateNotFound):
			return nil, apperrors.ErrCandidateNotFound
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, err
	}

	logger.Info().Int64("electionID", electionID).Int64("candidateID", candidateID).Msg("Vote recorded")
	return s.GetByID(ctx, electionID, studentID)
}

func (s *electionService) Delete(ctx context.Context, id int64) error {
	if err := s.electionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrElectionNotFound
		}
		return err
	}
	logger.Info().Int64("electionID", id).Msg("Election deleted")
	return nil
}
