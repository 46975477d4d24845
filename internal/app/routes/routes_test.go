package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/RohitShalgar4/campus360/internal/app/controllers"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
)

// newTestRouter builds the route tree with empty service wiring. Requests
// that get rejected by middleware never reach a handler, which is all
// these tests exercise.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "route-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campus360.app",
	})
	SetupRoutes(router, controllers.NewControllers(&services.Services{}), jwtService)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpointsArePublic(t *testing.T) {
	router := newTestRouter()

	assert.Equal(t, http.StatusOK, get(router, "/ping").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/health").Code)
}

func TestExpenseReadsRequireAuthentication(t *testing.T) {
	router := newTestRouter()

	assert.Equal(t, http.StatusUnauthorized, get(router, "/api/v1/budget/expenses").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/api/v1/budget/expenses/5").Code)
}
