package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// BookingController handles facility booking endpoints
type BookingController struct {
	bookingService services.BookingService
}

// NewBookingController creates a new BookingController
func NewBookingController(bookingService services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// Create godoc
// @Summary Request a facility booking
// @Description Books a slot for the authenticated student; conflicting live bookings are rejected
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (bc *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	studentID, _ := middleware.GetUserID(c)

	booking, err := bc.bookingService.Create(c.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(booking, "Booking requested successfully"))
}

// GetAll godoc
// @Summary List bookings
// @Description Admins see every booking; students see only their own
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (bc *BookingController) GetAll(c *gin.Context) {
	role, _ := middleware.GetUserRole(c)
	if role == models.RoleStudent {
		bc.ListMine(c)
		return
	}

	bookings, err := bc.bookingService.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(bookings, "Bookings retrieved successfully"))
}

// ListMine godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings/my [get]
func (bc *BookingController) ListMine(c *gin.Context) {
	studentID, _ := middleware.GetUserID(c)

	bookings, err := bc.bookingService.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(bookings, "Bookings retrieved successfully"))
}

// GetByID godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (bc *BookingController) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	booking, err := bc.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(booking, "Booking retrieved successfully"))
}

// UpdateStatus godoc
// @Summary Change a booking's status
// @Description Any status may move to any other status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/status [patch]
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	booking, err := bc.bookingService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(booking, "Booking status updated successfully"))
}

// Delete godoc
// @Summary Delete a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (bc *BookingController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := bc.bookingService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Booking deleted successfully"))
}
