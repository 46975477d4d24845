package models

import "time"

// Student defines the student model based on the 'students' table.
// Students, admins and doctors are disjoint identity records; email is
// unique within each table, not across tables.
type Student struct {
	ID             int64     `json:"id" db:"id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	ClassName      string    `json:"className" db:"class_name"`
	Department     string    `json:"department" db:"department"`
	Year           int       `json:"year" db:"year"`
	Gender         Gender    `json:"gender" db:"gender"`
	RegistrationNo string    `json:"registrationNo" db:"registration_no"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID          int64     `json:"id" db:"id"`
	FullName    string    `json:"fullName" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	Designation string    `json:"designation" db:"designation"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Doctor defines the doctor model based on the 'doctors' table
type Doctor struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Password      string    `json:"-" db:"password"`
	Qualification string    `json:"qualification" db:"qualification"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Identity is the role-agnostic view of a logged-in principal produced by
// the identity-resolution service. All three identity kinds share one
// token schema.
type Identity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Password string `json:"-"`
}
