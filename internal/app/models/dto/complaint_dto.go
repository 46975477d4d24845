package dto

import "github.com/RohitShalgar4/campus360/internal/app/models"

// CreateComplaintRequest is the non-file portion of the multipart
// complaint payload; an optional "image" form file may accompany it.
type CreateComplaintRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
}

// UpdateComplaintStatusRequest is the admin payload for a status change
type UpdateComplaintStatusRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required,oneof='Under Review' Investigating Resolved"`
}
