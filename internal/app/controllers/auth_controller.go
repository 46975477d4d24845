package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Login with institutional email and password
// @Description Authenticates any identity kind and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	identity, token, expiresIn, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	// The cookie mirrors the body token so browser clients need no storage
	c.SetCookie(middleware.TokenCookieName, token, expiresIn, "/", "", false, true)

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      identity.Role,
		ID:        identity.ID,
		Name:      identity.Name,
		Email:     identity.Email,
	}, "Login successful"))
}

// Logout godoc
// @Summary Logout
// @Description Clears the token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

// RegisterStudent godoc
// @Summary Register a student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse
// @Router /auth/register/student [post]
func (ac *AuthController) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	id, err := ac.authService.RegisterStudent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}, "Student registered successfully"))
}

// RegisterAdmin godoc
// @Summary Register an admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Admin details"
// @Success 201 {object} dto.APIResponse
// @Router /auth/register/admin [post]
func (ac *AuthController) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	id, err := ac.authService.RegisterAdmin(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}, "Admin registered successfully"))
}

// RegisterDoctor godoc
// @Summary Register a doctor account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterDoctorRequest true "Doctor details"
// @Success 201 {object} dto.APIResponse
// @Router /auth/register/doctor [post]
func (ac *AuthController) RegisterDoctor(c *gin.Context) {
	var req dto.RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	id, err := ac.authService.RegisterDoctor(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}, "Doctor registered successfully"))
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	if err := ac.authService.ChangePassword(c.Request.Context(), role, userID, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Password changed successfully"))
}

// Validate godoc
// @Summary Validate the current token
// @Description Returns the identity behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /auth/validate [get]
func (ac *AuthController) Validate(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	identity, err := ac.authService.GetIdentity(c.Request.Context(), role, userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.IdentityResponse{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
		Role:  identity.Role,
	}, "Token is valid"))
}
