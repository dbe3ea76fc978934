package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type FormationRepo struct {
	db *gorm.DB
}

func NewFormationRepo(db *gorm.DB) *FormationRepo {
	return &FormationRepo{db: db}
}

func (r *FormationRepo) CreateFormation(ctx context.Context, f *model.Formation) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return domainErrors.WrapInternal(err, "CreateFormation")
	}
	return nil
}

func (r *FormationRepo) GetFormationByID(ctx context.Context, id uint) (model.Formation, error) {
	var f model.Formation
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&f)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Formation{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Formation{}, domainErrors.WrapInternal(err, "GetFormationByID")
	}
	return f, nil
}

func (r *FormationRepo) ListFormations(ctx context.Context, skip, limit int) ([]model.Formation, error) {
	var formations []model.Formation
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&formations).Error; err != nil {
		return nil, domainErrors.WrapInternal(err, "ListFormations")
	}
	return formations, nil
}

func (r *FormationRepo) UpdateFormation(ctx context.Context, f *model.Formation) error {
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return domainErrors.WrapInternal(err, "UpdateFormation")
	}
	return nil
}

func (r *FormationRepo) DeleteFormation(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Formation{}, id)
	if err := res.Error; err != nil {
		return domainErrors.WrapInternal(err, "DeleteFormation")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
