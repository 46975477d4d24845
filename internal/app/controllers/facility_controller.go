package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
)

// FacilityController handles facility management endpoints
type FacilityController struct {
	facilityService services.FacilityService
}

// NewFacilityController creates a new FacilityController
func NewFacilityController(facilityService services.FacilityService) *FacilityController {
	return &FacilityController{facilityService: facilityService}
}

// parseIDParam extracts a positive int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}

// Create godoc
// @Summary Create a facility
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Facility details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /facilities [post]
func (fc *FacilityController) Create(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	facility, err := fc.facilityService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(facility, "Facility created successfully"))
}

// GetAll godoc
// @Summary List active facilities
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /facilities [get]
func (fc *FacilityController) GetAll(c *gin.Context) {
	facilities, err := fc.facilityService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(facilities, "Facilities retrieved successfully"))
}

// GetByID godoc
// @Summary Get a facility
// @Tags facilities
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /facilities/{id} [get]
func (fc *FacilityController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	facility, err := fc.facilityService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(facility, "Facility retrieved successfully"))
}

// Update godoc
// @Summary Update a facility
// @Tags facilities
// @Accept json
// @Produce json
// @Param id path int true "Facility ID"
// @Param request body dto.UpdateFacilityRequest true "Facility details"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /facilities/{id} [put]
func (fc *FacilityController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	facility, err := fc.facilityService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(facility, "Facility updated successfully"))
}

// Delete godoc
// @Summary Delete a facility
// @Tags facilities
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /facilities/{id} [delete]
func (fc *FacilityController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := fc.facilityService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Facility deleted successfully"))
}
