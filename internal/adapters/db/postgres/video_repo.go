package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type VideoRepo struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) CreateVideo(ctx context.Context, v *model.Video) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return domainErrors.WrapInternal(err, "CreateVideo")
	}
	return nil
}

func (r *VideoRepo) GetVideoByID(ctx context.Context, id uint) (model.Video, error) {
	var v model.Video
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&v)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Video{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Video{}, domainErrors.WrapInternal(err, "GetVideoByID")
	}
	return v, nil
}

func (r *VideoRepo) GetVideosByIDs(ctx context.Context, ids []uint) ([]model.Video, error) {
	var videos []model.Video
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, domainErrors.WrapInternal(err, "GetVideosByIDs")
	}
	return videos, nil
}

func (r *VideoRepo) ListVideos(ctx context.Context, skip, limit int) ([]model.Video, error) {
	var videos []model.Video
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&videos).Error; err != nil {
		return nil, domainErrors.WrapInternal(err, "ListVideos")
	}
	return videos, nil
}

func (r *VideoRepo) UpdateVideo(ctx context.Context, v *model.Video) error {
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		return domainErrors.WrapInternal(err, "UpdateVideo")
	}
	return nil
}

func (r *VideoRepo) DeleteVideo(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Video{}, id)
	if err := res.Error; err != nil {
		return domainErrors.WrapInternal(err, "DeleteVideo")
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
