package repository

import (
	"context"

	"healthcare-auth/internal/domain/entity"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID uint) (*entity.PatientProfile, error)
}
