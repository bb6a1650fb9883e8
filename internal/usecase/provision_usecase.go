package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthcare-auth/internal/delivery/dto"
	"healthcare-auth/internal/domain/entity"
	"healthcare-auth/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type ProvisionUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error)
}

type provisionUsecase struct {
	log         *logrus.Logger
	transactor  repository.Transactor
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorProfileRepository
	patientRepo repository.PatientProfileRepository
	nurseRepo   repository.NurseProfileRepository
}

func NewProvisionUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	nurseRepo repository.NurseProfileRepository,
) ProvisionUsecase {
	return &provisionUsecase{
		log:         log,
		transactor:  transactor,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		nurseRepo:   nurseRepo,
	}
}

// Register creates the account and its role-matching profile inside one
// transaction. Either both rows exist afterwards or neither does.
func (u *provisionUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*entity.User, error) {
	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, FieldErrors{"date_of_birth": "date_of_birth must use the YYYY-MM-DD format"}
		}
		dob = &parsed
	}

	if existing, err := u.userRepo.FindByUsername(ctx, req.Username); err != nil {
		u.log.Warnf("Failed to check username availability: %+v", err)
		return nil, err
	} else if existing != nil {
		return nil, FieldErrors{"username": "A user with that username already exists"}
	}

	if existing, err := u.userRepo.FindByEmail(ctx, req.Email); err != nil {
		u.log.Warnf("Failed to check email availability: %+v", err)
		return nil, err
	} else if existing != nil {
		return nil, FieldErrors{"email": "A user with that email already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Address:     req.Address,
		IsActive:    &active,
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			// Concurrent registration can slip past the pre-checks; map the
			// constraint violation back to the same field errors.
			if isUniqueViolation(err, "username") {
				return FieldErrors{"username": "A user with that username already exists"}
			}
			if isUniqueViolation(err, "email") {
				return FieldErrors{"email": "A user with that email already exists"}
			}
			return err
		}

		return u.createProfile(ctx, user)
	})
	if err != nil {
		var fieldErrs FieldErrors
		if !errors.As(err, &fieldErrs) {
			u.log.Warnf("Registration rolled back for %q: %+v", req.Username, err)
		}
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return user, nil
}

// createProfile adds the role-specific profile row with its generated
// identifier. Must run inside the registration transaction.
func (u *provisionUsecase) createProfile(ctx context.Context, user *entity.User) error {
	switch user.Role {
	case entity.RoleDoctor:
		profile := &entity.DoctorProfile{
			UserID:         user.ID,
			LicenseNumber:  fmt.Sprintf("DOC%06d", user.ID),
			Specialization: "General Medicine",
		}
		if err := u.doctorRepo.Create(ctx, profile); err != nil {
			return &ProvisioningError{Err: fmt.Errorf("create doctor profile: %w", err)}
		}
		user.DoctorProfile = profile
	case entity.RolePatient:
		profile := &entity.PatientProfile{
			UserID:    user.ID,
			PatientID: fmt.Sprintf("P%04d", user.ID),
		}
		if err := u.patientRepo.Create(ctx, profile); err != nil {
			return &ProvisioningError{Err: fmt.Errorf("create patient profile: %w", err)}
		}
		user.PatientProfile = profile
	case entity.RoleNurse:
		profile := &entity.NurseProfile{
			UserID:     user.ID,
			NurseID:    fmt.Sprintf("N%04d", user.ID),
			Department: "General",
			Shift:      "Day",
		}
		if err := u.nurseRepo.Create(ctx, profile); err != nil {
			return &ProvisioningError{Err: fmt.Errorf("create nurse profile: %w", err)}
		}
		user.NurseProfile = profile
	default:
		// Unreachable after request validation; kept as a hard stop so a bad
		// role can never leave a profile-less account.
		return &ProvisioningError{Err: fmt.Errorf("unrecognized role %q", user.Role)}
	}

	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
