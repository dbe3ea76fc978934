package repo

import (
	"context"

	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (uint, error)

	GetUserByID(ctx context.Context, id uint) (model.User, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}
