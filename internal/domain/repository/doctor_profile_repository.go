package repository

import (
	"context"

	"healthcare-auth/internal/domain/entity"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, userID uint) (*entity.DoctorProfile, error)
}
