package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories aggregates all repository instances sharing one pool
type Repositories struct {
	Student   *StudentRepository
	Admin     *AdminRepository
	Doctor    *DoctorRepository
	Facility  *FacilityRepository
	Booking   *BookingRepository
	Budget    *BudgetCategoryRepository
	Expense   *ExpenseRepository
	Complaint *ComplaintRepository
	Election  *ElectionRepository
	Violation *ViolationRepository
	CC        *CCRepository
}

// NewRepositories creates all repositories with the shared connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Student:   NewStudentRepository(db),
		Admin:     NewAdminRepository(db),
		Doctor:    NewDoctorRepository(db),
		Facility:  NewFacilityRepository(db),
		Booking:   NewBookingRepository(db),
		Budget:    NewBudgetCategoryRepository(db),
		Expense:   NewExpenseRepository(db),
		Complaint: NewComplaintRepository(db),
		Election:  NewElectionRepository(db),
		Violation: NewViolationRepository(db),
		CC:        NewCCRepository(db),
	}
}
