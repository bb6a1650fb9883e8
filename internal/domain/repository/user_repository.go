package repository

import (
	"context"

	"healthcare-auth/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByUsername returns (nil, nil) when no user matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID returns (nil, nil) when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}
