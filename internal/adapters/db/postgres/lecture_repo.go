package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type LectureRepo struct {
	db *gorm.DB
}

func NewLectureRepo(db *gorm.DB) *LectureRepo {
	return &LectureRepo{db: db}
}

func (r *LectureRepo) CreateLecture(ctx context.Context, l *model.Lecture) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return domainErrors.WrapInternal(err, "CreateLecture")
	}
	return nil
}

func (r *LectureRepo) GetLectureByID(ctx context.Context, id uint) (model.Lecture, error) {
	var l model.Lecture
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&l)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Lecture{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Lecture{}, domainErrors.WrapInternal(err, "GetLectureByID")
	}
	return l, nil
}

func (r *LectureRepo) ListLectures(ctx context.Context, skip, limit int) ([]model.Lecture, error) {
	var lectures []model.Lecture
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&lectures).Error; err != nil {
		return nil, domainErrors.WrapInternal(err, "ListLectures")
	}
	return lectures, nil
}

func (r *LectureRepo) UpdateLecture(ctx context.Context, l *model.Lecture) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return domainErrors.WrapInternal(err, "UpdateLecture")
	}
	return nil
}

func (r *LectureRepo) DeleteLecture(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Lecture{}, id)
	if err := res.Error; err != nil {
		return domainErrors.WrapInternal(err, "DeleteLecture")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
