package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/middleware"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
)

type stubBookingService struct {
	createFn        func(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error)
	getAllFn        func(ctx context.Context) ([]*models.Booking, error)
	listByStudentFn func(ctx context.Context, studentID int64) ([]*models.Booking, error)
	updateStatusFn  func(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error)
}

func (s *stubBookingService) Create(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error) {
	return s.createFn(ctx, studentID, req)
}

func (s *stubBookingService) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	return nil, apperrors.ErrBookingNotFound
}

func (s *stubBookingService) GetAll(ctx context.Context) ([]*models.Booking, error) {
	return s.getAllFn(ctx)
}

func (s *stubBookingService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Booking, error) {
	return s.listByStudentFn(ctx, studentID)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
	return s.updateStatusFn(ctx, id, status)
}

func (s *stubBookingService) Delete(ctx context.Context, id int64) error {
	return nil
}

func patchJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// fakeAuth injects claims the way the JWT middleware would
func fakeAuth(userID int64, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func newBookingRouter(stub *stubBookingService, userID int64, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewBookingController(stub)

	group := router.Group("/", fakeAuth(userID, role))
	group.POST("/bookings", controller.Create)
	group.GET("/bookings", controller.GetAll)
	group.PATCH("/bookings/:id/status", controller.UpdateStatus)
	return router
}

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		FacilityID: 3,
		Date:       "2025-07-01",
		Slot:       "09:00-11:00",
		Purpose:    "Tech fest rehearsal",
	}
}

func TestBookingCreate_Success(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error) {
			assert.Equal(t, int64(7), studentID)
			return &models.Booking{ID: 1, FacilityID: req.FacilityID, RequestedBy: studentID,
				Date: req.Date, Slot: req.Slot, Status: models.BookingPending}, nil
		},
	}
	router := newBookingRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/bookings", validBookingRequest())

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)
}

func TestBookingCreate_SlotConflict(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, apperrors.ErrSlotAlreadyBooked
		},
	}
	router := newBookingRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/bookings", validBookingRequest())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already booked")
}

func TestBookingCreate_InactiveFacility(t *testing.T) {
	stub := &stubBookingService{
		createFn: func(ctx context.Context, studentID int64, req *dto.CreateBookingRequest) (*models.Booking, error) {
			return nil, apperrors.ErrFacilityInactive
		},
	}
	router := newBookingRouter(stub, 7, models.RoleStudent)

	recorder := postJSON(t, router, "/bookings", validBookingRequest())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBookingGetAll_AdminSeesEverything(t *testing.T) {
	adminListed := false
	stub := &stubBookingService{
		getAllFn: func(ctx context.Context) ([]*models.Booking, error) {
			adminListed = true
			return []*models.Booking{{ID: 1}, {ID: 2}}, nil
		},
	}
	router := newBookingRouter(stub, 99, models.RoleAdmin)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, adminListed)
}

func TestBookingGetAll_StudentSeesOwnOnly(t *testing.T) {
	var listedFor int64
	stub := &stubBookingService{
		listByStudentFn: func(ctx context.Context, studentID int64) ([]*models.Booking, error) {
			listedFor = studentID
			return []*models.Booking{{ID: 1, RequestedBy: studentID}}, nil
		},
	}
	router := newBookingRouter(stub, 7, models.RoleStudent)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(7), listedFor)
}

func TestBookingUpdateStatus(t *testing.T) {
	stub := &stubBookingService{
		updateStatusFn: func(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: status}, nil
		},
	}
	router := newBookingRouter(stub, 99, models.RoleAdmin)

	recorder := patchJSON(t, router, "/bookings/5/status", dto.UpdateBookingStatusRequest{Status: models.BookingApproved})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"approved"`)
}

func TestBookingUpdateStatus_BadStatusValue(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, 99, models.RoleAdmin)

	recorder := patchJSON(t, router, "/bookings/5/status", gin.H{"status": "cancelled"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestBookingUpdateStatus_ReapprovalConflict(t *testing.T) {
	stub := &stubBookingService{
		updateStatusFn: func(ctx context.Context, id int64, status models.BookingStatus) (*models.Booking, error) {
			return nil, apperrors.ErrSlotAlreadyBooked
		},
	}
	router := newBookingRouter(stub, 99, models.RoleAdmin)

	recorder := patchJSON(t, router, "/bookings/5/status", dto.UpdateBookingStatusRequest{Status: models.BookingApproved})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
