package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidEmailDomain = errors.New("email must belong to the institutional domain")
	ErrEmailAlreadyExists = errors.New("Email already exists")
)

// Facility and booking errors
var (
	ErrFacilityNotFound      = errors.New("facility not found")
	ErrFacilityAlreadyExists = errors.New("facility with this name already exists")
	ErrFacilityInactive      = errors.New("facility is not active")
	ErrSlotNotAvailable      = errors.New("requested slot is not in the facility availability")
	ErrSlotAlreadyBooked     = errors.New("facility already booked for this slot")
	ErrBookingNotFound       = errors.New("booking not found")
)

// Budget errors
var (
	ErrCategoryNotFound      = errors.New("budget category not found")
	ErrCategoryAlreadyExists = errors.New("budget category already exists")
	ErrUnknownCategory       = errors.New("category is not in the allowed list")
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrInvalidReceipt        = errors.New("invalid receipt file")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Election errors
var (
	ErrElectionNotFound  = errors.New("election not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrElectionClosed    = errors.New("election deadline has passed")
	ErrAlreadyVoted      = errors.New("student has already voted in this election")
)

// Violation and CC errors
var (
	ErrViolationNotFound = errors.New("violation not found")
	ErrCCNotFound        = errors.New("class coordinator not found")
	ErrCCAlreadyExists   = errors.New("class coordinator already exists for this class and department")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a specific message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a specific message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
