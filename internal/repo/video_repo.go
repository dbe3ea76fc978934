package repo

import (
	"context"

	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type VideoRepo interface {
	CreateVideo(ctx context.Context, v *model.Video) error

	GetVideoByID(ctx context.Context, id uint) (model.Video, error)

	GetVideosByIDs(ctx context.Context, ids []uint) ([]model.Video, error)

	ListVideos(ctx context.Context, skip, limit int) ([]model.Video, error)

	UpdateVideo(ctx context.Context, v *model.Video) error

	DeleteVideo(ctx context.Context, id uint) error
}
