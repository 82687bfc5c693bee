package repository

import (
	"context"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios (login del dashboard).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
