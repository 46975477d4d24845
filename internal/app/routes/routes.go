package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/controllers"
	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/middleware"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
)

// SetupRoutes registers the full /api/v1 route tree
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authRequired := middleware.JWTAuthMiddleware(jwtService)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	studentOnly := middleware.RequireRoles(models.RoleStudent)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", ctrl.Auth.Login)
			authGroup.POST("/logout", ctrl.Auth.Logout)
			authGroup.GET("/validate", authRequired, ctrl.Auth.Validate)
		}

		// Identity registration and password management, one group per kind
		v1.POST("/student/register", ctrl.Auth.RegisterStudent)
		v1.POST("/admin/register", ctrl.Auth.RegisterAdmin)
		v1.POST("/doctor/register", ctrl.Auth.RegisterDoctor)
		v1.PUT("/student/password", authRequired, studentOnly, ctrl.Auth.ChangePassword)
		v1.PUT("/admin/password", authRequired, adminOnly, ctrl.Auth.ChangePassword)
		v1.PUT("/doctor/password", authRequired, middleware.RequireRoles(models.RoleDoctor), ctrl.Auth.ChangePassword)

		facilities := v1.Group("/facilities")
		{
			facilities.GET("", ctrl.Facility.GetAll)
			facilities.GET("/:id", ctrl.Facility.GetByID)
			facilities.POST("", authRequired, adminOnly, ctrl.Facility.Create)
			facilities.PUT("/:id", authRequired, adminOnly, ctrl.Facility.Update)
			facilities.DELETE("/:id", authRequired, adminOnly, ctrl.Facility.Delete)
		}

		bookings := v1.Group("/bookings", authRequired)
		{
			bookings.POST("", studentOnly, ctrl.Booking.Create)
			bookings.GET("", ctrl.Booking.GetAll)
			bookings.GET("/my", studentOnly, ctrl.Booking.ListMine)
			bookings.GET("/:id", ctrl.Booking.GetByID)
			bookings.PATCH("/:id/status", adminOnly, ctrl.Booking.UpdateStatus)
			bookings.DELETE("/:id", adminOnly, ctrl.Booking.Delete)
		}

		budget := v1.Group("/budget")
		{
			// Category rollups are a public transparency read
			budget.GET("/categories", ctrl.Budget.GetAllCategories)
			budget.GET("/categories/:id", ctrl.Budget.GetCategory)
			budget.POST("/categories", authRequired, adminOnly, ctrl.Budget.CreateCategory)
			budget.PUT("/categories/:id", authRequired, adminOnly, ctrl.Budget.UpdateCategory)
			budget.DELETE("/categories/:id", authRequired, adminOnly, ctrl.Budget.DeleteCategory)

			// Expense details carry receipts and recorder identity,
			// so reads require a signed-in user
			budget.GET("/expenses", authRequired, ctrl.Budget.GetAllExpenses)
			budget.GET("/expenses/:id", authRequired, ctrl.Budget.GetExpense)
			budget.POST("/expenses", authRequired, adminOnly, ctrl.Budget.CreateExpense)
			budget.PUT("/expenses/:id", authRequired, adminOnly, ctrl.Budget.UpdateExpense)
			budget.DELETE("/expenses/:id", authRequired, adminOnly, ctrl.Budget.DeleteExpense)
		}

		complaints := v1.Group("/complaints", authRequired)
		{
			complaints.POST("", ctrl.Complaint.Create)
			complaints.GET("", ctrl.Complaint.GetAll)
			complaints.GET("/:id", ctrl.Complaint.GetByID)
			complaints.POST("/:id/upvote", ctrl.Complaint.Upvote)
			complaints.PATCH("/:id/status", adminOnly, ctrl.Complaint.UpdateStatus)
			complaints.DELETE("/:id", adminOnly, ctrl.Complaint.Delete)
		}

		elections := v1.Group("/elections", authRequired)
		{
			elections.POST("", adminOnly, ctrl.Election.Create)
			elections.GET("", ctrl.Election.GetAll)
			elections.GET("/:id", ctrl.Election.GetByID)
			elections.POST("/:id/vote", studentOnly, ctrl.Election.Vote)
			elections.DELETE("/:id", adminOnly, ctrl.Election.Delete)
		}

		violations := v1.Group("/students/violations", authRequired)
		{
			violations.GET("", ctrl.Violation.GetAll)
			violations.GET("/:id", ctrl.Violation.GetByID)
			violations.POST("", adminOnly, ctrl.Violation.Create)
			violations.PUT("/:id", adminOnly, ctrl.Violation.Update)
			violations.DELETE("/:id", adminOnly, ctrl.Violation.Delete)
		}

		ccs := v1.Group("/cc", authRequired)
		{
			ccs.GET("", ctrl.CC.GetAll)
			ccs.GET("/:id", ctrl.CC.GetByID)
			ccs.POST("", adminOnly, ctrl.CC.Create)
			ccs.PUT("/:id", adminOnly, ctrl.CC.Update)
			ccs.DELETE("/:id", adminOnly, ctrl.CC.Delete)
		}
	}
}
