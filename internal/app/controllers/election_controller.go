package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// ElectionController handles election and voting endpoints
type ElectionController struct {
	electionService services.ElectionService
}

// NewElectionController creates a new ElectionController
func NewElectionController(electionService services.ElectionService) *ElectionController {
	return &ElectionController{electionService: electionService}
}

// callerStudentID returns the caller's id when the caller is a student,
// zero otherwise. Only student callers carry a hasVoted state.
func callerStudentID(c *gin.Context) int64 {
	role, _ := middleware.GetUserRole(c)
	if role != models.RoleStudent {
		return 0
	}
	id, _ := middleware.GetUserID(c)
	return id
}

// Create godoc
// @Summary Create an election
// @Description Counts the eligible electorate for the scope at creation time
// @Tags elections
// @Accept json
// @Produce json
// @Param request body dto.CreateElectionRequest true "Election details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /elections [post]
func (ec *ElectionController) Create(c *gin.Context) {
	var req dto.CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	election, err := ec.electionService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(election, "Election created successfully"))
}

// GetAll godoc
// @Summary List elections with the caller's voting state
// @Tags elections
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /elections [get]
func (ec *ElectionController) GetAll(c *gin.Context) {
	elections, err := ec.electionService.GetAll(c.Request.Context(), callerStudentID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(elections, "Elections retrieved successfully"))
}

// GetByID godoc
// @Summary Get an election
// @Tags elections
// @Produce json
// @Param id path int true "Election ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /elections/{id} [get]
func (ec *ElectionController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	election, err := ec.electionService.GetByID(c.Request.Context(), id, callerStudentID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(election, "Election retrieved successfully"))
}

// Vote godoc
// @Summary Cast the caller's vote
// @Description One ballot per student per election, enforced server side
// @Tags elections
// @Accept json
// @Produce json
// @Param id path int true "Election ID"
// @Param request body dto.VoteRequest true "Chosen candidate"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /elections/{id}/vote [post]
func (ec *ElectionController) Vote(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	studentID, _ := middleware.GetUserID(c)

	election, err := ec.electionService.Vote(c.Request.Context(), id, req.CandidateID, studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(election, "Vote recorded successfully"))
}

// Delete godoc
// @Summary Delete an election
// @Tags elections
// @Produce json
// @Param id path int true "Election ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /elections/{id} [delete]
func (ec *ElectionController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ec.electionService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Election deleted successfully"))
}
