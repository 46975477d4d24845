package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/helpers"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
	"github.com/RohitShalgar4/campus360/internal/pkg/mailer"
)

// BookingService handles facility booking requests
type BookingService interface {
	Create(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	GetAll(ctx context.Context) ([]*models.Booking, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingService struct {
	bookingRepo  *repositories.BookingRepository
	facilityRepo *repositories.FacilityRepository
	studentRepo  *repositories.StudentRepository
	ccRepo       *repositories.CCRepository
	mailer       mailer.Mailer
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo *repositories.BookingRepository,
	facilityRepo *repositories.FacilityRepository,
	studentRepo *repositories.StudentRepository,
	ccRepo *repositories.CCRepository,
	m mailer.Mailer,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		studentRepo:  studentRepo,
		ccRepo:       ccRepo,
		mailer:       m,
	}
}

// Create validates the request against the facility and inserts the
// booking. The slot-conflict guarantee comes from the insert itself, not
// from a read-then-write check.
func (s *bookingService) Create(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if _, err := helpers.ParseDateString(req.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	facility, err := s.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrFacilityNotFound
		}
		return nil, err
	}

	if facility.Status != models.FacilityActive {
		return nil, apperrors.ErrFacilityInactive
	}
	if !facility.HasSlot(req.Date, req.Slot) {
		return nil, apperrors.ErrSlotNotAvailable
	}
	if missing := facility.MissingRequiredFields(req.Requirements); len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	booking := &models.Booking{
		FacilityID:   req.FacilityID,
		RequestedBy:  studentID,
		Date:         req.Date,
		Slot:         req.Slot,
		Purpose:      req.Purpose,
		Requirements: req.Requirements,
		Status:       models.BookingPending,
	}

	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotTaken) {
			return nil, apperrors.ErrSlotAlreadyBooked
		}
		return nil, err
	}

	logger.Info().Int64("bookingID", id).Int64("facilityID", req.FacilityID).
		Str("date", req.Date).Str("slot", req.Slot).Msg("Booking created")
	return s.GetByID(ctx, id)
}

func (s *bookingService) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*models.Booking, error) {
	return s.bookingRepo.GetAll(ctx)
}

func (s *bookingService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error) {
	return s.bookingRepo.ListByStudent(ctx, studentID)
}

// UpdateStatus moves a booking to a new status and notifies the student's
// class coordinator. Notification failures are logged, never surfaced.
func (s *bookingService) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		if errors.Is(err, repositories.ErrSlotTaken) {
			return nil, apperrors.ErrSlotAlreadyBooked
		}
		return nil, err
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyCoordinator(ctx, booking)
	return booking, nil
}

func (s *bookingService) notifyCoordinator(ctx context.Context, booking *models.Booking) {
	student, err := s.studentRepo.GetByID(ctx, booking.RequestedBy)
	if err != nil {
		logger.Warn().Err(err).Int64("bookingID", booking.ID).Msg("Could not load student for booking notification")
		return
	}

	cc, err := s.ccRepo.GetByClassAndDepartment(ctx, student.ClassName, student.Department)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Warn().Err(err).Msg("Could not resolve class coordinator for booking notification")
		}
		return
	}

	if err := s.mailer.SendBookingStatusNotice(cc.Email, cc.Name, booking.StudentName,
		booking.FacilityName, booking.Date, booking.Slot, string(booking.Status)); err != nil {
		logger.Warn().Err(err).Str("ccEmail", cc.Email).Msg("Failed to send booking status notice")
	}
}

func (s *bookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return err
	}
	return nil
}
