package repository

import (
	"context"

	"healthcare-auth/internal/domain/entity"
)

type NurseProfileRepository interface {
	Create(ctx context.Context, profile *entity.NurseProfile) error
	FindByUserID(ctx context.Context, userID uint) (*entity.NurseProfile, error)
}
