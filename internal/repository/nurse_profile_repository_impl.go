package repository

import (
	"context"
	"errors"

	"healthcare-auth/internal/domain/entity"
	domainRepo "healthcare-auth/internal/domain/repository"

	"gorm.io/gorm"
)

type nurseProfileRepository struct {
	db *gorm.DB
}

func NewNurseProfileRepository(db *gorm.DB) domainRepo.NurseProfileRepository {
	return &nurseProfileRepository{db: db}
}

func (r *nurseProfileRepository) Create(ctx context.Context, profile *entity.NurseProfile) error {
	return dbFromContext(ctx, r.db).Create(profile).Error
}

func (r *nurseProfileRepository) FindByUserID(ctx context.Context, userID uint) (*entity.NurseProfile, error) {
	var profile entity.NurseProfile
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
