package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/RohitShalgar4/campus360/internal/app/models"
	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/repositories"
	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
	"github.com/RohitShalgar4/campus360/internal/pkg/auth"
	"github.com/RohitShalgar4/campus360/internal/pkg/logger"
	"github.com/RohitShalgar4/campus360/internal/pkg/validation"
)

// AuthService handles authentication for all three identity kinds
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Identity, string, int, error)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (int64, error)
	ChangePassword(ctx context.Context, role models.Role, userID int64, oldPassword, newPassword string) error
	GetIdentity(ctx context.Context, role models.Role, userID int64) (*models.Identity, error)
}

type authService struct {
	studentRepo *repositories.StudentRepository
	adminRepo   *repositories.AdminRepository
	doctorRepo  *repositories.DoctorRepository
	jwtService  *auth.JWTService
	emailDomain string
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	adminRepo *repositories.AdminRepository,
	doctorRepo *repositories.DoctorRepository,
	jwtService *auth.JWTService,
	emailDomain string,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		doctorRepo:  doctorRepo,
		jwtService:  jwtService,
		emailDomain: emailDomain,
	}
}

// resolveIdentity looks the email up across the identity tables in a fixed
// order. The first match wins; the tables are disjoint by convention.
func (s *authService) resolveIdentity(ctx context.Context, email string) (*models.Identity, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.Identity{
			ID:       student.ID,
			Email:    student.Email,
			Name:     student.FirstName + " " + student.LastName,
			Role:     models.RoleStudent,
			Password: student.Password,
		}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.Identity{
			ID:       admin.ID,
			Email:    admin.Email,
			Name:     admin.FullName,
			Role:     models.RoleAdmin,
			Password: admin.Password,
		}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByEmail(ctx, email)
	if err == nil {
		return &models.Identity{
			ID:       doctor.ID,
			Email:    doctor.Email,
			Name:     doctor.FullName,
			Role:     models.RoleDoctor,
			Password: doctor.Password,
		}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	return nil, apperrors.ErrInvalidCredentials
}

// Login authenticates an email and password and returns the identity with
// a signed token. The domain gate runs before any credential work; an
// unknown email and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Identity, string, int, error) {
	if !validation.IsInstitutionalEmail(email, s.emailDomain) {
		return nil, "", 0, apperrors.ErrInvalidEmailDomain
	}

	identity, err := s.resolveIdentity(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return nil, "", 0, err
		}
		logger.Error().Err(err).Msg("Error resolving identity during login")
		return nil, "", 0, fmt.Errorf("error resolving identity: %w", err)
	}

	if !auth.CheckPassword(identity.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating token")
		return nil, "", 0, fmt.Errorf("error generating token: %w", err)
	}

	identity.Password = ""
	return identity, token, expiresIn, nil
}

// RegisterStudent creates a student account
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
	if !validation.IsInstitutionalEmail(req.Email, s.emailDomain) {
		return 0, apperrors.ErrInvalidEmailDomain
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       hashed,
		ClassName:      req.ClassName,
		Department:     req.Department,
		Year:           req.Year,
		Gender:         models.Gender(req.Gender),
		RegistrationNo: req.RegistrationNo,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}

	logger.Info().Int64("studentID", id).Str("email", req.Email).Msg("Student registered")
	return id, nil
}

// RegisterAdmin creates an admin account
func (s *authService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error) {
	if !validation.IsInstitutionalEmail(req.Email, s.emailDomain) {
		return 0, apperrors.ErrInvalidEmailDomain
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    hashed,
		Designation: req.Designation,
	}

	id, err := s.adminRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}

	logger.Info().Int64("adminID", id).Str("email", req.Email).Msg("Admin registered")
	return id, nil
}

// RegisterDoctor creates a doctor account
func (s *authService) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (int64, error) {
	if !validation.IsInstitutionalEmail(req.Email, s.emailDomain) {
		return 0, apperrors.ErrInvalidEmailDomain
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	doctor := &models.Doctor{
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      hashed,
		Qualification: req.Qualification,
	}

	id, err := s.doctorRepo.Create(ctx, doctor)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}

	logger.Info().Int64("doctorID", id).Str("email", req.Email).Msg("Doctor registered")
	return id, nil
}

// ChangePassword verifies the old password and stores a new hash for the
// caller's own account
func (s *authService) ChangePassword(ctx context.Context, role models.Role, userID int64, oldPassword, newPassword string) error {
	identity, err := s.GetIdentity(ctx, role, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(identity.Password, oldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	switch role {
	case models.RoleStudent:
		return s.studentRepo.UpdatePassword(ctx, userID, hashed)
	case models.RoleAdmin:
		return s.adminRepo.UpdatePassword(ctx, userID, hashed)
	case models.RoleDoctor:
		return s.doctorRepo.UpdatePassword(ctx, userID, hashed)
	}
	return apperrors.ErrPermissionDenied
}

// GetIdentity loads the identity record behind a token's (role, userId) pair
func (s *authService) GetIdentity(ctx context.Context, role models.Role, userID int64) (*models.Identity, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrResourceNotFound
			}
			return nil, err
		}
		return &models.Identity{
			ID:       student.ID,
			Email:    student.Email,
			Name:     student.FirstName + " " + student.LastName,
			Role:     models.RoleStudent,
			Password: student.Password,
		}, nil
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrResourceNotFound
			}
			return nil, err
		}
		return &models.Identity{
			ID:       admin.ID,
			Email:    admin.Email,
			Name:     admin.FullName,
			Role:     models.RoleAdmin,
			Password: admin.Password,
		}, nil
	case models.RoleDoctor:
		doctor, err := s.doctorRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrResourceNotFound
			}
			return nil, err
		}
		return &models.Identity{
			ID:       doctor.ID,
			Email:    doctor.Email,
			Name:     doctor.FullName,
			Role:     models.RoleDoctor,
			Password: doctor.Password,
		}, nil
	}
	return nil, apperrors.ErrPermissionDenied
}
