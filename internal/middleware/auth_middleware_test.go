package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, jwtService *auth.JWTService, roles ...models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{JWTAuthMiddleware(jwtService)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})

	router.GET("/protected", handlers...)
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.Identity{
		ID:    7,
		Email: "jane.doe@mgmcen.ac.in",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func testJWT(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "campus360.test",
	})
}

func TestJWTAuthMiddleware_NoToken(t *testing.T) {
	router := newAuthTestRouter(t, testJWT(time.Hour))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthMiddleware_BearerHeader(t *testing.T) {
	jwtService := testJWT(time.Hour)
	router := newAuthTestRouter(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"id":7`)
	assert.Contains(t, recorder.Body.String(), `"role":"STUDENT"`)
}

func TestJWTAuthMiddleware_CookieFallback(t *testing.T) {
	jwtService := testJWT(time.Hour)
	router := newAuthTestRouter(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issueToken(t, jwtService, models.RoleAdmin)})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := testJWT(-time.Minute)
	router := newAuthTestRouter(t, expired)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, expired, models.RoleStudent))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_004")
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	jwtService := testJWT(time.Hour)
	router := newAuthTestRouter(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent)+"x")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireRoles(t *testing.T) {
	jwtService := testJWT(time.Hour)
	router := newAuthTestRouter(t, jwtService, models.RoleAdmin)

	adminReq := httptest.NewRequest(http.MethodGet, "/protected", nil)
	adminReq.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, adminReq)
	assert.Equal(t, http.StatusOK, recorder.Code)

	studentReq := httptest.NewRequest(http.MethodGet, "/protected", nil)
	studentReq.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, studentReq)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRoles_MultipleAllowed(t *testing.T) {
	jwtService := testJWT(time.Hour)
	router := newAuthTestRouter(t, jwtService, models.RoleAdmin, models.RoleDoctor)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleDoctor))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
