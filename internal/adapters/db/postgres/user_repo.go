package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, u model.User) (uint, error) {
	res := r.db.WithContext(ctx).Create(&u)
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return 0, domainErrors.ErrAlreadyExists
		}
		return 0, domainErrors.WrapInternal(err, "CreateUser")
	}
	return u.ID, nil
}

// isUniqueViolation reports whether err carries SQLSTATE 23505, the
// unique-constraint class that a concurrent registration trips between
// the availability pre-checks and the insert.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (model.User, error) {
	var u model.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, domainErrors.WrapInternal(err, "GetUserByID")
	}
	return u, nil
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, domainErrors.WrapInternal(err, "GetUserByUsername")
	}
	return u, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, domainErrors.WrapInternal(err, "GetUserByEmail")
	}
	return u, nil
}
