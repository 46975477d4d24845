package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// CCController handles class-coordinator contact endpoints
type CCController struct {
	ccService services.CCService
}

// NewCCController creates a new CCController
func NewCCController(ccService services.CCService) *CCController {
	return &CCController{ccService: ccService}
}

// Create godoc
// @Summary Register a class coordinator
// @Tags coordinators
// @Accept json
// @Produce json
// @Param request body dto.CreateCCRequest true "Coordinator details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /ccs [post]
func (cc *CCController) Create(c *gin.Context) {
	var req dto.CreateCCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	coordinator, err := cc.ccService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(coordinator, "Class coordinator registered successfully"))
}

// GetAll godoc
// @Summary List class coordinators
// @Tags coordinators
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /ccs [get]
func (cc *CCController) GetAll(c *gin.Context) {
	coordinators, err := cc.ccService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(coordinators, "Class coordinators retrieved successfully"))
}

// GetByID godoc
// @Summary Get a class coordinator
// @Tags coordinators
// @Produce json
// @Param id path int true "Coordinator ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /ccs/{id} [get]
func (cc *CCController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	coordinator, err := cc.ccService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(coordinator, "Class coordinator retrieved successfully"))
}

// Update godoc
// @Summary Update a class coordinator
// @Tags coordinators
// @Accept json
// @Produce json
// @Param id path int true "Coordinator ID"
// @Param request body dto.UpdateCCRequest true "Coordinator details"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /ccs/{id} [put]
func (cc *CCController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	coordinator, err := cc.ccService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(coordinator, "Class coordinator updated successfully"))
}

// Delete godoc
// @Summary Delete a class coordinator
// @Tags coordinators
// @Produce json
// @Param id path int true "Coordinator ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /ccs/{id} [delete]
func (cc *CCController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := cc.ccService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Class coordinator deleted successfully"))
}
