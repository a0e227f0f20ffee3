package repository

import (
	"context"

	"github.com/nutallis/nutallis-api/internal/domain/entity"
)

// UserRepository porto de persistência para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
