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

// CCService handles class-coordinator contact management
type CCService interface {
	Create(ctx context.Context, req *dto.CreateCCRequest) (*models.CC, error)
	GetByID(ctx context.Context, id int64) (*models.CC, error)
	GetAll(ctx context.Context) ([]*models.CC, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCCRequest) (*models.CC, error)
	Delete(ctx context.Context, id int64) error
}

type ccService struct {
	ccRepo *repositories.CCRepository
}

// NewCCService creates a new CCService
func NewCCService(ccRepo *repositories.CCRepository) CCService {
	return &ccService{ccRepo: ccRepo}
}

func (s *ccService) Create(ctx context.Context, req *dto.CreateCCRequest) (*models.CC, error) {
	cc := &models.CC{
		ClassName:  req.ClassName,
		Department: req.Department,
		Name:       req.Name,
		Email:      req.Email,
	}

	id, err := s.ccRepo.Create(ctx, cc)
	if err != nil {
		if errors.Is(err, repositories.ErrCCAlreadyExists) {
			return nil, apperrors.ErrCCAlreadyExists
		}
		return nil, err
	}

	logger.Info().Int64("ccID", id).Str("className", req.ClassName).
		Str("department", req.Department).Msg("Class coordinator registered")
	return s.GetByID(ctx, id)
}

func (s *ccService) GetByID(ctx context.Context, id int64) (*models.CC, error) {
	cc, err := s.ccRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCCNotFound
		}
		return nil, err
	}
	return cc, nil
}

func (s *ccService) GetAll(ctx context.Context) ([]*models.CC, error) {
	return s.ccRepo.GetAll(ctx)
}

func (s *ccService) Update(ctx context.Context, id int64, req *dto.UpdateCCRequest) (*models.CC, error) {
	cc := &models.CC{
		ID:         id,
		ClassName:  req.ClassName,
		Department: req.Department,
		Name:       req.Name,
		Email:      req.Email,
	}

	if err := s.ccRepo.Update(ctx, cc); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCCNotFound
		}
		if errors.Is(err, repositories.ErrCCAlreadyExists) {
			return nil, apperrors.ErrCCAlreadyExists
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ccService) Delete(ctx context.Context, id int64) error {
	if err := s.ccRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCCNotFound
		}
		return err
	}
	logger.Info().Int64("ccID", id).Msg("Class coordinator deleted")
	return nil
}
