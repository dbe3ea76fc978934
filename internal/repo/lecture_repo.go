package repo

import (
	"context"

	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type LectureRepo interface {
	CreateLecture(ctx context.Context, l *model.Lecture) error

	GetLectureByID(ctx context.Context, id uint) (model.Lecture, error)

	ListLectures(ctx context.Context, skip, limit int) ([]model.Lecture, error)

	UpdateLecture(ctx context.Context, l *model.Lecture) error

	DeleteLecture(ctx context.Context, id uint) error
}
