package service

import (
	"context"

	validate "github.com/go-playground/validator/v10"

	"github.com/kakao-farmer/platform-api/internal/auth/dto"
	"github.com/kakao-farmer/platform-api/internal/auth/hash"
	"github.com/kakao-farmer/platform-api/internal/auth/token"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/repo"
)

type AuthService interface {
	Register(ctx context.Context, dto dto.RegisterDTO) (uint, error)
	Login(ctx context.Context, dto dto.LoginDTO) (model.AccessToken, error)
	Authenticate(ctx context.Context, rawToken string) (model.User, error)
}

func NewAuthService(userRepo repo.UserRepo, hasher *hash.Hasher, codec *token.Codec, v *validate.Validate) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		codec:    codec,
		v:        v,
	}
}
