package repo

import (
	"context"

	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type FormationRepo interface {
	CreateFormation(ctx context.Context, f *model.Formation) error

	GetFormationByID(ctx context.Context, id uint) (model.Formation, error)

	ListFormations(ctx context.Context, skip, limit int) ([]model.Formation, error)

	UpdateFormation(ctx context.Context, f *model.Formation) error

	DeleteFormation(ctx context.Context, id uint) error
}
