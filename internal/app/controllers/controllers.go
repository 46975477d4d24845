package controllers

import "github.com/RohitShalgar4/campus360/internal/app/services"

// Controllers aggregates all controller instances
type Controllers struct {
	Auth      *AuthController
	Facility  *FacilityController
	Booking   *BookingController
	Budget    *BudgetController
	Complaint *ComplaintController
	Election  *ElectionController
	Violation *ViolationController
	CC        *CCController
}

// NewControllers wires all controllers with their services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(svcs.Auth),
		Facility:  NewFacilityController(svcs.Facility),
		Booking:   NewBookingController(svcs.Booking),
		Budget:    NewBudgetController(svcs.Budget),
		Complaint: NewComplaintController(svcs.Complaint),
		Election:  NewElectionController(svcs.Election),
		Violation: NewViolationController(svcs.Violation),
		CC:        NewCCController(svcs.CC),
	}
}
