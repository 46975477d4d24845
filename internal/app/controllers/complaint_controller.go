package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// ComplaintController handles anonymous complaint endpoints
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// Create godoc
// @Summary File a complaint
// @Description Complaints are anonymous; no author is recorded
// @Tags complaints
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Complaint title"
// @Param description formData string true "Description"
// @Param category formData string true "Category"
// @Param image formData file false "Optional supporting image"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints [post]
func (cc *ComplaintController) Create(c *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	image, err := c.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleValidationError(c, err)
		return
	}

	complaint, err := cc.complaintService.Create(c.Request.Context(), &req, image)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(complaint, "Complaint filed successfully"))
}

// GetAll godoc
// @Summary List complaints, most upvoted first
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints [get]
func (cc *ComplaintController) GetAll(c *gin.Context) {
	complaints, err := cc.complaintService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(complaints, "Complaints retrieved successfully"))
}

// GetByID godoc
// @Summary Get a complaint
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints/{id} [get]
func (cc *ComplaintController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	complaint, err := cc.complaintService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(complaint, "Complaint retrieved successfully"))
}

// Upvote godoc
// @Summary Upvote a complaint
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints/{id}/upvote [post]
func (cc *ComplaintController) Upvote(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	complaint, err := cc.complaintService.Upvote(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(complaint, "Complaint upvoted successfully"))
}

// UpdateStatus godoc
// @Summary Change a complaint's status
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints/{id}/status [patch]
func (cc *ComplaintController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	complaint, err := cc.complaintService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(complaint, "Complaint status updated successfully"))
}

// Delete godoc
// @Summary Delete a complaint
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /complaints/{id} [delete]
func (cc *ComplaintController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := cc.complaintService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Complaint deleted successfully"))
}
