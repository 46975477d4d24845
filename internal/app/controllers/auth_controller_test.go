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

type stubAuthService struct {
	loginFn           func(ctx context.Context, email, password string) (*models.Identity, string, int, error)
	registerStudentFn func(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error)
	registerAdminFn   func(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error)
	registerDoctorFn  func(ctx context.Context, req *dto.RegisterDoctorRequest) (int64, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*models.Identity, string, int, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
	return s.registerStudentFn(ctx, req)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error) {
	return s.registerAdminFn(ctx, req)
}

func (s *stubAuthService) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (int64, error) {
	return s.registerDoctorFn(ctx, req)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, role models.Role, userID int64, oldPassword, newPassword string) error {
	return nil
}

func (s *stubAuthService) GetIdentity(ctx context.Context, role models.Role, userID int64) (*models.Identity, error) {
	return nil, apperrors.ErrResourceNotFound
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func newAuthRouter(stub *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(stub)
	router.POST("/auth/login", controller.Login)
	router.POST("/auth/logout", controller.Logout)
	router.POST("/student/register", controller.RegisterStudent)
	return router
}

func validStudentRegistration() dto.RegisterStudentRequest {
	return dto.RegisterStudentRequest{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@mgmcen.ac.in",
		Password:       "s3cret-password",
		ClassName:      "SE-A",
		Department:     "Computer Science",
		Year:           2,
		Gender:         "FEMALE",
		RegistrationNo: "CS2023-042",
	}
}

func TestLogin_Success_SetsCookie(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*models.Identity, string, int, error) {
			return &models.Identity{ID: 7, Email: email, Name: "Jane Doe", Role: models.RoleStudent},
				"signed.jwt.token", 86400, nil
		},
	}
	router := newAuthRouter(stub)

	recorder := postJSON(t, router, "/auth/login", dto.LoginRequest{
		Email:    "jane.doe@mgmcen.ac.in",
		Password: "s3cret-password",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "signed.jwt.token")
	assert.Contains(t, recorder.Body.String(), `"role":"STUDENT"`)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_ExternalDomainRejected(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*models.Identity, string, int, error) {
			return nil, "", 0, apperrors.ErrInvalidEmailDomain
		},
	}
	router := newAuthRouter(stub)

	recorder := postJSON(t, router, "/auth/login", dto.LoginRequest{
		Email:    "jane@gmail.com",
		Password: "s3cret-password",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*models.Identity, string, int, error) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(stub)

	recorder := postJSON(t, router, "/auth/login", dto.LoginRequest{
		Email:    "jane.doe@mgmcen.ac.in",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	recorder := postJSON(t, router, "/auth/login", gin.H{"email": "jane.doe@mgmcen.ac.in"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	recorder := postJSON(t, router, "/auth/logout", gin.H{})

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRegisterStudent_Success(t *testing.T) {
	stub := &stubAuthService{
		registerStudentFn: func(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
			return 11, nil
		},
	}
	router := newAuthRouter(stub)

	recorder := postJSON(t, router, "/student/register", validStudentRegistration())

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":11`)
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerStudentFn: func(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
			return 0, apperrors.ErrEmailAlreadyExists
		},
	}
	router := newAuthRouter(stub)

	recorder := postJSON(t, router, "/student/register", validStudentRegistration())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email already exists")
}

func TestRegisterStudent_ShortPasswordRejectedByBinding(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	req := validStudentRegistration()
	req.Password = "short"
	recorder := postJSON(t, router, "/student/register", req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
