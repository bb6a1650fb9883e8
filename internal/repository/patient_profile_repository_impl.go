package repository

import (
	"context"
	"errors"

	"healthcare-auth/internal/domain/entity"
	domainRepo "healthcare-auth/internal/domain/repository"

	"gorm.io/gorm"
)

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	return dbFromContext(ctx, r.db).Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID uint) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
