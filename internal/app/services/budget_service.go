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
	"github.com/RohitShalgar4/campus360/internal/pkg/helpers"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// Receipt upload limits
const (
	MaxReceiptImageSize = 5 << 20  // 5 MB
	MaxReceiptPDFSize   = 10 << 20 // 10 MB
)

// receiptImageTypes are the accepted image content types for receipts
var receiptImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ValidateReceipt checks a receipt upload's content type and size.
// Images are capped at 5 MB, PDFs at 10 MB.
func ValidateReceipt(fileHeader *multipart.FileHeader) error {
	contentType := fileHeader.Header.Get("Content-Type")

	switch {
	case receiptImageTypes[contentType]:
		if fileHeader.Size > MaxReceiptImageSize {
			return apperrors.NewCustomError(apperrors.ErrInvalidReceipt, "receipt image exceeds the 5 MB limit")
		}
	case contentType == "application/pdf":
		if fileHeader.Size > MaxReceiptPDFSize {
			return apperrors.NewCustomError(apperrors.ErrInvalidReceipt, "receipt PDF exceeds the 10 MB limit")
		}
	default:
		return apperrors.NewCustomError(apperrors.ErrInvalidReceipt,
			fmt.Sprintf("unsupported receipt type %q, expected JPEG, PNG or PDF", contentType))
	}

	return nil
}

// BudgetService handles budget categories and expense tracking
type BudgetService interface {
	CreateCategory(ctx context.Context, req *dto.CreateBudgetCategoryRequest) (*models.BudgetCategory, error)
	GetCategory(ctx context.Context, id int64) (*models.BudgetCategory, error)
	GetAllCategories(ctx context.Context) ([]*models.BudgetCategory, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.UpdateBudgetCategoryRequest) (*models.BudgetCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateExpense(ctx context.Context, addedBy int64, req *dto.CreateExpenseRequest, receipt *multipart.FileHeader) (*dto.ExpenseResponse, error)
	GetExpense(ctx context.Context, id int64) (*dto.ExpenseResponse, error)
	GetAllExpenses(ctx context.Context) ([]*dto.ExpenseResponse, error)
	UpdateExpense(ctx context.Context, id int64, req *dto.UpdateExpenseRequest, receipt *multipart.FileHeader) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id int64) error
}

type budgetService struct {
	budgetRepo  *repositories.BudgetCategoryRepository
	expenseRepo *repositories.ExpenseRepository
	storage     filestorage.Storage
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	budgetRepo *repositories.BudgetCategoryRepository,
	expenseRepo *repositories.ExpenseRepository,
	storage filestorage.Storage,
) BudgetService {
	return &budgetService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		storage:     storage,
	}
}

func (s *budgetService) CreateCategory(ctx context.Context, req *dto.CreateBudgetCategoryRequest) (*models.BudgetCategory, error) {
	if !models.IsAllowedBudgetCategory(req.Name) {
		return nil, apperrors.ErrUnknownCategory
	}

	category := &models.BudgetCategory{
		Name:      req.Name,
		Allocated: req.Allocated,
	}

	id, err := s.budgetRepo.Create(ctx, category)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrCategoryAlreadyExists
		}
		return nil, err
	}

	// Expenses may predate the category row; fold them in immediately
	if err := s.budgetRepo.RecomputeSpent(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to recompute spent amounts after category create")
	}

	logger.Info().Int64("categoryID", id).Str("name", req.Name).Msg("Budget category created")
	return s.GetCategory(ctx, id)
}

func (s *budgetService) GetCategory(ctx context.Context, id int64) (*models.BudgetCategory, error) {
	category, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAllCategories recomputes every rollup from the expense table before
// reading so the listing cannot drift from the source of truth
func (s *budgetService) GetAllCategories(ctx context.Context) ([]*models.BudgetCategory, error) {
	if err := s.budgetRepo.RecomputeSpent(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to recompute spent amounts")
	}
	return s.budgetRepo.GetAll(ctx)
}

func (s *budgetService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateBudgetCategoryRequest) (*models.BudgetCategory, error) {
	if err := s.budgetRepo.UpdateAllocation(ctx, id, req.Allocated); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return s.GetCategory(ctx, id)
}

func (s *budgetService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.budgetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return err
	}
	logger.Info().Int64("categoryID", id).Msg("Budget category deleted")
	return nil
}

// annotate joins an expense with its category's current rollup
func (s *budgetService) annotate(ctx context.Context, expense *models.Expense) (*dto.ExpenseResponse, error) {
	resp := &dto.ExpenseResponse{Expense: *expense}

	category, err := s.budgetRepo.GetByName(ctx, expense.Category)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Category rows can lag behind the allow-list; leave rollups zero
			return resp, nil
		}
		return nil, err
	}

	resp.CategoryAllocated = category.Allocated
	resp.CategorySpent = category.Spent
	resp.CategoryRemaining = category.Remaining
	return resp, nil
}

// CreateExpense validates and stores the receipt, inserts the expense and
// bumps the category's spent counter
func (s *budgetService) CreateExpense(ctx context.Context, addedBy int64, req *dto.CreateExpenseRequest, receipt *multipart.FileHeader) (*dto.ExpenseResponse, error) {
	if !models.IsAllowedBudgetCategory(req.Category) {
		return nil, apperrors.ErrUnknownCategory
	}
	if _, err := helpers.ParseDateString(req.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if receipt == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidReceipt, "receipt file is required")
	}
	if err := ValidateReceipt(receipt); err != nil {
		return nil, err
	}

	stored, err := s.storage.Save(receipt, "receipts")
	if err != nil {
		return nil, fmt.Errorf("error storing receipt: %w", err)
	}

	expense := &models.Expense{
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		Category:        req.Category,
		Date:            req.Date,
		ReceiptURL:      stored.URL,
		ReceiptPublicID: stored.PublicID,
		AddedBy:         addedBy,
	}

	id, err := s.expenseRepo.Create(ctx, expense)
	if err != nil {
		if delErr := s.storage.Delete(stored.PublicID); delErr != nil {
			logger.Warn().Err(delErr).Str("publicID", stored.PublicID).Msg("Failed to clean up orphaned receipt")
		}
		return nil, err
	}

	if err := s.budgetRepo.AdjustSpent(ctx, req.Category, req.Amount); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.Error().Err(err).Str("category", req.Category).Msg("Failed to adjust spent amount")
	}

	logger.Info().Int64("expenseID", id).Str("category", req.Category).
		Float64("amount", req.Amount).Msg("Expense created")
	return s.GetExpense(ctx, id)
}

func (s *budgetService) GetExpense(ctx context.Context, id int64) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}
	return s.annotate(ctx, expense)
}

func (s *budgetService) GetAllExpenses(ctx context.Context) ([]*dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		resp, err := s.annotate(ctx, expense)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// UpdateExpense replaces an expense's fields, moving the spent rollups
// between categories when the amount or category changed
func (s *budgetService) UpdateExpense(ctx context.Context, id int64, req *dto.UpdateExpenseRequest, receipt *multipart.FileHeader) (*dto.ExpenseResponse, error) {
	if !models.IsAllowedBudgetCategory(req.Category) {
		return nil, apperrors.ErrUnknownCategory
	}
	if _, err := helpers.ParseDateString(req.Date); err != nil {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	existing, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, err
	}

	updated := &models.Expense{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		Category:        req.Category,
		Date:            req.Date,
		ReceiptURL:      existing.ReceiptURL,
		ReceiptPublicID: existing.ReceiptPublicID,
	}

	var oldReceiptID string
	if receipt != nil {
		if err := ValidateReceipt(receipt); err != nil {
			return nil, err
		}
		stored, err := s.storage.Save(receipt, "receipts")
		if err != nil {
			return nil, fmt.Errorf("error storing receipt: %w", err)
		}
		oldReceiptID = existing.ReceiptPublicID
		updated.ReceiptURL = stored.URL
		updated.ReceiptPublicID = stored.PublicID
	}

	if err := s.expenseRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	if oldReceiptID != "" {
		if err := s.storage.Delete(oldReceiptID); err != nil {
			logger.Warn().Err(err).Str("publicID", oldReceiptID).Msg("Failed to delete replaced receipt")
		}
	}

	if existing.Category != req.Category || existing.Amount != req.Amount {
		if err := s.budgetRepo.AdjustSpent(ctx, existing.Category, -existing.Amount); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			logger.Error().Err(err).Str("category", existing.Category).Msg("Failed to roll back spent amount")
		}
		if err := s.budgetRepo.AdjustSpent(ctx, req.Category, req.Amount); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			logger.Error().Err(err).Str("category", req.Category).Msg("Failed to adjust spent amount")
		}
	}

	return s.GetExpense(ctx, id)
}

// DeleteExpense removes the expense, rolls back its category rollup and
// deletes the stored receipt
func (s *budgetService) DeleteExpense(ctx context.Context, id int64) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return err
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.budgetRepo.AdjustSpent(ctx, expense.Category, -expense.Amount); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.Error().Err(err).Str("category", expense.Category).Msg("Failed to roll back spent amount")
	}

	if expense.ReceiptPublicID != "" {
		if err := s.storage.Delete(expense.ReceiptPublicID); err != nil {
			logger.Warn().Err(err).Str("publicID", expense.ReceiptPublicID).Msg("Failed to delete receipt")
		}
	}

	logger.Info().Int64("expenseID", id).Msg("Expense deleted")
	return nil
}
