package dto

import "github.com/RohitShalgar4/campus360/internal/app/models"

// CreateFacilityRequest is the admin payload for creating a facility
type CreateFacilityRequest struct {
	Name              string                     `json:"name" binding:"required"`
	Capacity          int                        `json:"capacity" binding:"required,gt=0"`
	Location          string                     `json:"location" binding:"required"`
	RequirementFields []models.RequirementField  `json:"requirementFields"`
	Availability      []models.AvailabilityEntry `json:"availability"`
	Status            models.FacilityStatus      `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateFacilityRequest mirrors the create payload; all fields are replaced
type UpdateFacilityRequest struct {
	Name              string                     `json:"name" binding:"required"`
	Capacity          int                        `json:"capacity" binding:"required,gt=0"`
	Location          string                     `json:"location" binding:"required"`
	RequirementFields []models.RequirementField  `json:"requirementFields"`
	Availability      []models.AvailabilityEntry `json:"availability"`
	Status            models.FacilityStatus      `json:"status" binding:"required,oneof=active inactive"`
}
