package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// ViolationController handles disciplinary violation endpoints
type ViolationController struct {
	violationService services.ViolationService
}

// NewViolationController creates a new ViolationController
func NewViolationController(violationService services.ViolationService) *ViolationController {
	return &ViolationController{violationService: violationService}
}

// Create godoc
// @Summary Record a disciplinary violation
// @Tags violations
// @Accept json
// @Produce json
// @Param request body dto.CreateViolationRequest true "Violation details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /violations [post]
func (vc *ViolationController) Create(c *gin.Context) {
	var req dto.CreateViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	violation, err := vc.violationService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(violation, "Violation recorded successfully"))
}

// GetAll godoc
// @Summary List violations
// @Tags violations
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /violations [get]
func (vc *ViolationController) GetAll(c *gin.Context) {
	violations, err := vc.violationService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(violations, "Violations retrieved successfully"))
}

// GetByID godoc
// @Summary Get a violation
// @Tags violations
// @Produce json
// @Param id path int true "Violation ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /violations/{id} [get]
func (vc *ViolationController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	violation, err := vc.violationService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(violation, "Violation retrieved successfully"))
}

// Update godoc
// @Summary Update a violation
// @Tags violations
// @Accept json
// @Produce json
// @Param id path int true "Violation ID"
// @Param request body dto.UpdateViolationRequest true "Violation details"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /violations/{id} [put]
func (vc *ViolationController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	violation, err := vc.violationService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(violation, "Violation updated successfully"))
}

// Delete godoc
// @Summary Delete a violation
// @Tags violations
// @Produce json
// @Param id path int true "Violation ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /violations/{id} [delete]
func (vc *ViolationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := vc.violationService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Violation deleted successfully"))
}
