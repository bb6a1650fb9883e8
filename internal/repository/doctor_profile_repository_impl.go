package repository

import (
	"context"
	"errors"

	"healthcare-auth/internal/domain/entity"
	domainRepo "healthcare-auth/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorProfileRepository struct {
	db *gorm.DB
}

func NewDoctorProfileRepository(db *gorm.DB) domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{db: db}
}

func (r *doctorProfileRepository) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	return dbFromContext(ctx, r.db).Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, userID uint) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
