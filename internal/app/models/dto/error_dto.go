package dto

import "time"

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidEmail       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_004"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_005"
	ErrorCodeForbidden          ErrorCode = "AUTH_006"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeResourceConflict      ErrorCode = "RES_003"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"AUTH_001"`
	Message string      `json:"message" example:"incorrect username or password"`
	Field   string      `json:"field,omitempty" example:"email"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}
