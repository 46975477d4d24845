package dto

import "github.com/RohitShalgar4/campus360/internal/app/models"

// LoginRequest is the unified login payload for all three identity kinds
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed token and the resolved identity.
// The token is additionally set as an httpOnly cookie named "token".
type TokenResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"` // seconds
	Role      models.Role `json:"role"`
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
}

// RegisterStudentRequest is the student registration payload
type RegisterStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	ClassName      string `json:"className" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Year           int    `json:"year" binding:"required,gte=1,lte=5"`
	Gender         string `json:"gender" binding:"required,oneof=MALE FEMALE"`
	RegistrationNo string `json:"registrationNo" binding:"required"`
}

// RegisterAdminRequest is the admin registration payload
type RegisterAdminRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Designation string `json:"designation" binding:"required"`
}

// RegisterDoctorRequest is the doctor registration payload
type RegisterDoctorRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Qualification string `json:"qualification" binding:"required"`
}

// ChangePasswordRequest is the only identity mutation after registration
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// IdentityResponse is returned by /auth/validate
type IdentityResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}
