package services

import (
	"context"
	"errors"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/helpers"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
	"github.com/RohitShalgar4/campus360/internal/pkg/mailer"
)

// ViolationService handles disciplinary violation records
type ViolationService interface {
	Create(ctx context.Context, req *dto.CreateViolationRequest) (*models.Violation, error)
	GetByID(ctx context.Context, id int64) (*models.Violation, error)
	GetAll(ctx context.Context) ([]*models.Violation, error)
	Update(ctx context.Context, id int64, req *dto.UpdateViolationRequest) (*models.Violation, error)
	Delete(ctx context.Context, id int64) error
}

type violationService struct {
	violationRepo *repositories.ViolationRepository
	ccRepo        *repositories.CCRepository
	mailer        mailer.Mailer
}

// NewViolationService creates a new ViolationService
func NewViolationService(
	violationRepo *repositories.ViolationRepository,
	ccRepo *repositories.CCRepository,
	m mailer.Mailer,
) ViolationService {
	return &violationService{
		violationRepo: violationRepo,
		ccRepo:        ccRepo,
		mailer:        m,
	}
}

// Create records a violation and, when the request names a class, notifies
// its coordinator. Notification failures are logged, never surfaced.
func (s *violationService) Create(ctx context.Context, req *dto.CreateViolationRequest) (*models.Violation, error) {
	if _, err := helpers.ParseDateString(req.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	violation := &models.Violation{
		Date:        req.Date,
		StudentName: req.StudentName,
		Reason:      req.Reason,
		Punishment:  req.Punishment,
	}

	id, err := s.violationRepo.Create(ctx, violation)
	if err != nil {
		return nil, err
	}

	if req.ClassName != "" && req.Department != "" {
		s.notifyCoordinator(ctx, req)
	}

	logger.Info().Int64("violationID", id).Str("studentName", req.StudentName).Msg("Violation recorded")
	return s.GetByID(ctx, id)
}

func (s *violationService) notifyCoordinator(ctx context.Context, req *dto.CreateViolationRequest) {
	cc, err := s.ccRepo.GetByClassAndDepartment(ctx, req.ClassName, req.Department)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().Err(err).Msg("Could not resolve class coordinator for violation notification")
		}
		return
	}

	if err := s.mailer.SendViolationNotice(cc.Email, cc.Name, req.StudentName, req.Reason, req.Punishment); err != nil {
		logger.Warn().Err(err).Str("ccEmail", cc.Email).Msg("Failed to send violation notice")
	}
}

func (s *violationService) GetByID(ctx context.Context, id int64) (*models.Violation, error) {
	violation, err := s.violationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrViolationNotFound
		}
		return nil, err
	}
	return violation, nil
}

func (s *violationService) GetAll(ctx context.Context) ([]*models.Violation, error) {
	return s.violationRepo.GetAll(ctx)
}

func (s *violationService) Update(ctx context.Context, id int64, req *dto.UpdateViolationRequest) (*models.Violation, error) {
	if _, err := helpers.ParseDateString(req.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	violation := &models.Violation{
		ID:          id,
		Date:        req.Date,
		StudentName: req.StudentName,
		Reason:      req.Reason,
		Punishment:  req.Punishment,
	}

	if err := s.violationRepo.Update(ctx, violation); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrViolationNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *violationService) Delete(ctx context.Context, id int64) error {
	if err := s.violationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrViolationNotFound
		}
		return err
	}
	logger.Info().Int64("violationID", id).Msg("Violation deleted")
	return nil
}
