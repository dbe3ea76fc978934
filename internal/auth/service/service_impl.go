package service

import (
	"context"
	"errors"

	validate "github.com/go-playground/validator/v10"

	"github.com/kakao-farmer/platform-api/internal/auth/dto"
	"github.com/kakao-farmer/platform-api/internal/auth/hash"
	"github.com/kakao-farmer/platform-api/internal/auth/token"
	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/repo"
)

const defaultStatus = "user"

type authService struct {
	userRepo repo.UserRepo
	hasher   *hash.Hasher
	codec    *token.Codec
	v        *validate.Validate
}

// Register creates a user after checking username and email
// availability. Both checks run before the password is hashed so a
// doomed request never pays the adaptive-hash cost.
func (a *authService) Register(ctx context.Context, d dto.RegisterDTO) (uint, error) {
	if err := a.v.Struct(d); err != nil {
		return 0, domainErrors.NewInvalidArgument(err.Error())
	}

	if _, err := a.userRepo.GetUserByUsername(ctx, d.Username); err == nil {
		return 0, domainErrors.NewDuplicateField("username")
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return 0, domainErrors.WrapInternal(err, "Register")
	}

	if _, err := a.userRepo.GetUserByEmail(ctx, d.Email); err == nil {
		return 0, domainErrors.NewDuplicateField("email")
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return 0, domainErrors.WrapInternal(err, "Register")
	}

	passwordHash, err := a.hasher.Hash(d.Password)
	if err != nil {
		return 0, domainErrors.WrapInternal(err, "Register")
	}

	status := d.Status
	if status == "" {
		status = defaultStatus
	}

	id, err := a.userRepo.CreateUser(ctx, model.User{
		Name:         d.Name,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: passwordHash,
		Status:       status,
	})
	if err != nil {
		// Concurrent registration can still trip the unique constraint
		// between the pre-check and the insert.
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return 0, domainErrors.ErrAlreadyExists
		}
		return 0, domainErrors.WrapInternal(err, "Register")
	}
	return id, nil
}

// Login verifies credentials and issues a fresh token. Unknown username
// and wrong password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, d dto.LoginDTO) (model.AccessToken, error) {
	if err := a.v.Struct(d); err != nil {
		return model.AccessToken{}, domainErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByUsername(ctx, d.Username)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.AccessToken{}, domainErrors.ErrInvalidCredentials
	}
	if err != nil {
		return model.AccessToken{}, domainErrors.WrapInternal(err, "Login")
	}

	if !a.hasher.Verify(d.Password, user.PasswordHash) {
		return model.AccessToken{}, domainErrors.ErrInvalidCredentials
	}

	signed, exp, err := a.codec.Issue(user.Username)
	if err != nil {
		return model.AccessToken{}, domainErrors.WrapInternal(err, "Login")
	}

	return model.AccessToken{Token: signed, ExpiresAt: exp}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// A structurally valid token whose subject no longer exists resolves to
// nobody and is rejected.
func (a *authService) Authenticate(ctx context.Context, rawToken string) (model.User, error) {
	claims, err := a.codec.Decode(rawToken)
	if err != nil {
		return model.User{}, err
	}

	if claims.Subject == "" {
		return model.User{}, domainErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByUsername(ctx, claims.Subject)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.User{}, domainErrors.ErrInvalidToken
	}
	if err != nil {
		return model.User{}, domainErrors.WrapInternal(err, "Authenticate")
	}
	return user, nil
}
