package services

import (
	"context"
	"errors"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// FacilityService handles bookable facility management
type FacilityService interface {
	Create(ctx context.Context, req *dto.CreateFacilityRequest) (*models.Facility, error)
	GetByID(ctx context.Context, id int64) (*models.Facility, error)
	GetAll(ctx context.Context) ([]*models.Facility, error)
	Update(ctx context.Context, id int64, req *dto.UpdateFacilityRequest) (*models.Facility, error)
	Delete(ctx context.Context, id int64) error
}

type facilityService struct {
	facilityRepo *repositories.FacilityRepository
}

// NewFacilityService creates a new FacilityService
func NewFacilityService(facilityRepo *repositories.FacilityRepository) FacilityService {
	return &facilityService{facilityRepo: facilityRepo}
}

func (s *facilityService) Create(ctx context.Context, req *dto.CreateFacilityRequest) (*models.Facility, error) {
	status := req.Status
	if status == "" {
		status = models.FacilityActive
	}

	facility := &models.Facility{
		Name:              req.Name,
		Capacity:          req.Capacity,
		Location:          req.Location,
		RequirementFields: req.RequirementFields,
		Availability:      req.Availability,
		Status:            status,
	}

	id, err := s.facilityRepo.Create(ctx, facility)
	if err != nil {
		if errors.Is(err, repositories.ErrFacilityAlreadyExists) {
			return nil, apperrors.ErrFacilityAlreadyExists
		}
		return nil, err
	}

	logger.Info().Int64("facilityID", id).Str("name", req.Name).Msg("Facility created")
	return s.GetByID(ctx, id)
}

func (s *facilityService) GetByID(ctx context.Context, id int64) (*models.Facility, error) {
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFacilityNotFound
		}
		return nil, err
	}
	return facility, nil
}

func (s *facilityService) GetAll(ctx context.Context) ([]*models.Facility, error) {
	return s.facilityRepo.GetAll(ctx)
}

func (s *facilityService) Update(ctx context.Context, id int64, req *dto.UpdateFacilityRequest) (*models.Facility, error) {
	facility := &models.Facility{
		ID:                id,
		Name:              req.Name,
		Capacity:          req.Capacity,
		Location:          req.Location,
		RequirementFields: req.RequirementFields,
		Availability:      req.Availability,
		Status:            req.Status,
	}

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFacilityNotFound
		}
		if errors.Is(err, repositories.ErrFacilityAlreadyExists) {
			return nil, apperrors.ErrFacilityAlreadyExists
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *facilityService) Delete(ctx context.Context, id int64) error {
	if err := s.facilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrFacilityNotFound
		}
		return err
	}
	logger.Info().Int64("facilityID", id).Msg("Facility deleted")
	return nil
}
