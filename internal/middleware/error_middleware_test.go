package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"email domain rejected", apperrors.ErrInvalidEmailDomain, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"slot conflict", apperrors.ErrSlotAlreadyBooked, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"slot not offered", apperrors.ErrSlotNotAvailable, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"inactive facility", apperrors.ErrFacilityInactive, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown budget category", apperrors.ErrUnknownCategory, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad receipt", apperrors.ErrInvalidReceipt, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"election closed", apperrors.ErrElectionClosed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"repeat vote", apperrors.ErrAlreadyVoted, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"facility missing", apperrors.ErrFacilityNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"candidate missing", apperrors.ErrCandidateNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"booking missing", apperrors.ErrBookingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate facility", apperrors.ErrFacilityAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate coordinator", apperrors.ErrCCAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"unmapped error", errors.New("database on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestContext(t)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			resp := decodeError(t, recorder)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_CustomMessage(t *testing.T) {
	c, recorder := newTestContext(t)

	HandleAPIError(c, apperrors.NewValidationError("missing required fields: purpose"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Equal(t, "missing required fields: purpose", resp.Error.Message)
}

func TestHandleAPIError_WrappedSentinel(t *testing.T) {
	c, recorder := newTestContext(t)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrInvalidReceipt, "receipt image exceeds the 5 MB limit"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Equal(t, "receipt image exceeds the 5 MB limit", resp.Error.Message)
}

func TestHandleAPIError_InternalHidesDetail(t *testing.T) {
	c, recorder := newTestContext(t)

	HandleAPIError(c, errors.New("pq: relation bookings does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	resp := decodeError(t, recorder)
	assert.NotContains(t, resp.Error.Message, "relation")
}

func TestHandleValidationError(t *testing.T) {
	c, recorder := newTestContext(t)

	HandleValidationError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestHandleValidationError_FlattensFieldErrors(t *testing.T) {
	c, recorder := newTestContext(t)

	payload := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}{Email: "not-an-email", Password: "short"}

	err := validator.New().Struct(payload)
	require.Error(t, err)

	HandleValidationError(c, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	resp := decodeError(t, recorder)
	assert.Contains(t, resp.Error.Message, "Email must be a valid email address")
	assert.Contains(t, resp.Error.Message, "Password must be at least 8")
}
