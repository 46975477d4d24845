package dto

import "github.com/RohitShalgar4/campus360/internal/app/models"

// CreateBookingRequest is the student payload for requesting a slot
type CreateBookingRequest struct {
	FacilityID   int64                  `json:"facilityId" binding:"required,gt=0"`
	Date         string                 `json:"date" binding:"required"`
	Slot         string                 `json:"slot" binding:"required"`
	Purpose      string                 `json:"purpose" binding:"required"`
	Requirements map[string]interface{} `json:"requirements"`
}

// UpdateBookingStatusRequest is the admin payload for a status change.
// Any status may be set to any other.
type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}
