package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/filestorage"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// MaxComplaintImageSize caps complaint image uploads at 5 MB
const MaxComplaintImageSize = 5 << 20

// ComplaintService handles anonymous complaints
type ComplaintService interface {
	Create(ctx context.Context, req *dto.CreateComplaintRequest, image *multipart.FileHeader) (*models.Complaint, error)
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	GetAll(ctx context.Context) ([]*models.Complaint, error)
	Upvote(ctx context.Context, id int64) (*models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error)
	Delete(ctx context.Context, id int64) error
}

type complaintService struct {
	complaintRepo *repositories.ComplaintRepository
	storage       filestorage.Storage
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo *repositories.ComplaintRepository, storage filestorage.Storage) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		storage:       storage,
	}
}

// Create files a complaint. Complaints carry no author reference; the
// optional image is stored alongside receipts.
func (s *complaintService) Create(ctx context.Context, req *dto.CreateComplaintRequest, image *multipart.FileHeader) (*models.Complaint, error) {
	if !models.IsComplaintCategory(req.Category) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unknown complaint category %q", req.Category))
	}

	complaint := &models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      models.ComplaintUnderReview,
	}

	var storedID string
	if image != nil {
		contentType := image.Header.Get("Content-Type")
		if !receiptImageTypes[contentType] {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("unsupported image type %q, expected JPEG or PNG", contentType))
		}
		if image.Size > MaxComplaintImageSize {
			return nil, apperrors.NewValidationError("complaint image exceeds the 5 MB limit")
		}

		stored, err := s.storage.Save(image, "complaints")
		if err != nil {
			return nil, fmt.Errorf("error storing complaint image: %w", err)
		}
		complaint.ImageURL = &stored.URL
		complaint.ImagePublicID = &stored.PublicID
		storedID = stored.PublicID
	}

	id, err := s.complaintRepo.Create(ctx, complaint)
	if err != nil {
		if storedID != "" {
			if delErr := s.storage.Delete(storedID); delErr != nil {
				logger.Warn().Err(delErr).Str("publicID", storedID).Msg("Failed to clean up orphaned complaint image")
			}
		}
		return nil, err
	}

	logger.Info().Int64("complaintID", id).Str("category", req.Category).Msg("Complaint filed")
	return s.GetByID(ctx, id)
}

func (s *complaintService) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, err
	}
	return complaint, nil
}

func (s *complaintService) GetAll(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintRepo.GetAll(ctx)
}

// Upvote bumps the complaint's vote counter. The counter only moves up;
// there is no per-voter tracking on complaints.
func (s *complaintService) Upvote(ctx context.Context, id int64) (*models.Complaint, error) {
	if _, err := s.complaintRepo.Upvote(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *complaintService) UpdateStatus(ctx context.Context, id int64, status models.ComplaintStatus) (*models.Complaint, error) {
	if !models.ValidComplaintStatus(status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid complaint status %q", status))
	}

	if err := s.complaintRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *complaintService) Delete(ctx context.Context, id int64) error {
	complaint, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrComplaintNotFound
		}
		return err
	}

	if complaint.ImagePublicID != nil {
		if err := s.storage.Delete(*complaint.ImagePublicID); err != nil {
			logger.Warn().Err(err).Str("publicID", *complaint.ImagePublicID).Msg("Failed to delete complaint image")
		}
	}

	logger.Info().Int64("complaintID", id).Msg("Complaint deleted")
	return nil
}
