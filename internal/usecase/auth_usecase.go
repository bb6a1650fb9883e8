package usecase

import (
	"context"

	"healthcare-auth/internal/domain/entity"
	"healthcare-auth/internal/domain/repository"
	"healthcare-auth/pkg/token"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	// Authenticate verifies the credential pair and returns the account.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	// IssueToken returns the account's live token, minting one on first use.
	IssueToken(ctx context.Context, userID uint) (string, error)
	// RevokeToken deletes the account's token; ErrTokenNotFound if absent.
	RevokeToken(ctx context.Context, userID uint) error
	// ResolveToken maps a presented bearer token back to its account.
	ResolveToken(ctx context.Context, tok string) (*entity.User, error)
	// CurrentUser loads the account together with its role profile.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorProfileRepository
	patientRepo repository.PatientProfileRepository
	nurseRepo   repository.NurseProfileRepository
	sessions    repository.SessionStore
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	nurseRepo repository.NurseProfileRepository,
	sessions repository.SessionStore,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		nurseRepo:   nurseRepo,
		sessions:    sessions,
	}
}

func (u *authUsecase) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Checked only after the password verifies; the HTTP layer answers the
	// same way for both failures so login cannot reveal account existence.
	if !user.Active() {
		u.log.WithField("user_id", user.ID).Info("Login attempt on disabled account")
		return nil, ErrAccountDisabled
	}

	return user, nil
}

func (u *authUsecase) IssueToken(ctx context.Context, userID uint) (string, error) {
	existing, err := u.sessions.Find(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to look up session: %+v", err)
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	tok, err := token.New()
	if err != nil {
		u.log.Warnf("Failed to mint session token: %+v", err)
		return "", err
	}

	// The store binds first-write-wins, so a concurrent login that got
	// there first hands us its token instead.
	bound, err := u.sessions.Save(ctx, userID, tok)
	if err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		return "", err
	}

	return bound, nil
}

func (u *authUsecase) RevokeToken(ctx context.Context, userID uint) error {
	tok, err := u.sessions.Find(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to look up session: %+v", err)
		return err
	}
	if tok == "" {
		return ErrTokenNotFound
	}

	return u.sessions.Delete(ctx, userID, tok)
}

func (u *authUsecase) ResolveToken(ctx context.Context, tok string) (*entity.User, error) {
	userID, err := u.sessions.FindUserID(ctx, tok)
	if err != nil {
		u.log.Warnf("Failed to resolve session token: %+v", err)
		return nil, err
	}
	if userID == 0 {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	switch user.Role {
	case entity.RoleDoctor:
		profile, err := u.doctorRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to load doctor profile: %+v", err)
			return nil, err
		}
		user.DoctorProfile = profile
	case entity.RolePatient:
		profile, err := u.patientRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to load patient profile: %+v", err)
			return nil, err
		}
		user.PatientProfile = profile
	case entity.RoleNurse:
		profile, err := u.nurseRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to load nurse profile: %+v", err)
			return nil, err
		}
		user.NurseProfile = profile
	}

	return user, nil
}
