package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
)

// HandleAPIError translates a service error into the standard error
// envelope with an appropriate HTTP status. Controllers funnel every
// service error through here.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := mapError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Internal server error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func mapError(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	// 400 - domain rule violations
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmailDomain),
		errors.Is(err, apperrors.ErrFacilityInactive),
		errors.Is(err, apperrors.ErrSlotNotAvailable),
		errors.Is(err, apperrors.ErrSlotAlreadyBooked),
		errors.Is(err, apperrors.ErrUnknownCategory),
		errors.Is(err, apperrors.ErrInvalidReceipt),
		errors.Is(err, apperrors.ErrElectionClosed),
		errors.Is(err, apperrors.ErrAlreadyVoted),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	// 401 - authentication failures
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)

	// 403
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)

	// 404
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrFacilityNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrExpenseNotFound),
		errors.Is(err, apperrors.ErrComplaintNotFound),
		errors.Is(err, apperrors.ErrElectionNotFound),
		errors.Is(err, apperrors.ErrCandidateNotFound),
		errors.Is(err, apperrors.ErrViolationNotFound),
		errors.Is(err, apperrors.ErrCCNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	// 409 - duplicate resources
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrFacilityAlreadyExists),
		errors.Is(err, apperrors.ErrCategoryAlreadyExists),
		errors.Is(err, apperrors.ErrCCAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)
	}

	return http.StatusInternalServerError,
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "an unexpected error occurred")
}

// HandleValidationError translates a request-binding failure into the
// standard 400 envelope. Field-level validator errors are flattened into
// one readable message.
func HandleValidationError(c *gin.Context, err error) {
	message := err.Error()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, formatFieldError(fe))
		}
		message = strings.Join(parts, "; ")
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gt", "gte":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " failed " + e.Tag() + " validation"
	}
}
