package services

import (
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/config"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
	"github.com/RohitShalgar4/campus360/internal/pkg/filestorage"
	"github.com/RohitShalgar4/campus360/internal/pkg/mailer"
)

// Services aggregates all service instances
type Services struct {
	Auth      AuthService
	Facility  FacilityService
	Booking   BookingService
	Budget    BudgetService
	Complaint ComplaintService
	Election  ElectionService
	Violation ViolationService
	CC        CCService
}

// NewServices wires all services with their repositories and shared
// infrastructure
func NewServices(
	repos *repositories.Repositories,
	cfg *config.Config,
	jwtService *auth.JWTService,
	storage filestorage.Storage,
	m mailer.Mailer,
) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Student, repos.Admin, repos.Doctor, jwtService, cfg.Auth.EmailDomain),
		Facility:  NewFacilityService(repos.Facility),
		Booking:   NewBookingService(repos.Booking, repos.Facility, repos.Student, repos.CC, m),
		Budget:    NewBudgetService(repos.Budget, repos.Expense, storage),
		Complaint: NewComplaintService(repos.Complaint, storage),
		Election:  NewElectionService(repos.Election, repos.Student),
		Violation: NewViolationService(repos.Violation, repos.CC, m),
		CC:        NewCCService(repos.CC),
	}
}
