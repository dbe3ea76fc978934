package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

type PlaylistRepo struct {
	db *gorm.DB
}

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

func (r *PlaylistRepo) CreatePlaylist(ctx context.Context, p *model.Playlist, videos []model.Video) error {
	p.Videos = videos
	p.VideoCount = len(videos)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return domainErrors.WrapInternal(err, "CreatePlaylist")
	}
	return nil
}

func (r *PlaylistRepo) GetPlaylistByID(ctx context.Context, id uint) (model.Playlist, error) {
	var p model.Playlist
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&p)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Playlist{}, domainErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Playlist{}, domainErrors.WrapInternal(err, "GetPlaylistByID")
	}
	return p, nil
}

func (r *PlaylistRepo) ListPlaylists(ctx context.Context, skip, limit int) ([]model.Playlist, error) {
	var playlists []model.Playlist
	if err := r.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&playlists).Error; err != nil {
		return nil, domainErrors.WrapInternal(err, "ListPlaylists")
	}
	return playlists, nil
}

func (r *PlaylistRepo) UpdatePlaylist(ctx context.Context, p *model.Playlist) error {
	if err := r.db.WithContext(ctx).Omit("Videos").Save(p).Error; err != nil {
		return domainErrors.WrapInternal(err, "UpdatePlaylist")
	}
	return nil
}

func (r *PlaylistRepo) DeletePlaylist(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Playlist{ID: id}).Association("Videos").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&model.Playlist{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrNotFound
		}
		return domainErrors.WrapInternal(err, "DeletePlaylist")
	}
	return nil
}

func (r *PlaylistRepo) ListPlaylistVideos(ctx context.Context, playlistID uint) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Model(&model.Playlist{ID: playlistID}).
		Association("Videos").
		Find(&videos)
	if err != nil {
		return nil, domainErrors.WrapInternal(err, "ListPlaylistVideos")
	}
	return videos, nil
}

func (r *PlaylistRepo) HasVideo(ctx context.Context, playlistID, videoID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("playlist_videos").
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Count(&count).Error
	if err != nil {
		return false, domainErrors.WrapInternal(err, "HasVideo")
	}
	return count > 0, nil
}

// AddVideo appends the video to the relation and recomputes VideoCount
// from the relation's cardinality, which is the single source of truth
// for the denormalized counter.
func (r *PlaylistRepo) AddVideo(ctx context.Context, p *model.Playlist, v model.Video) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Videos").Append(&v); err != nil {
			return err
		}
		return r.recount(tx, p)
	})
	if err != nil {
		return domainErrors.WrapInternal(err, "AddVideo")
	}
	return nil
}

func (r *PlaylistRepo) ReplaceVideos(ctx context.Context, p *model.Playlist, videos []model.Video) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs := make([]*model.Video, len(videos))
		for i := range videos {
			refs[i] = &videos[i]
		}
		if err := tx.Model(p).Association("Videos").Replace(refs); err != nil {
			return err
		}
		return r.recount(tx, p)
	})
	if err != nil {
		return domainErrors.WrapInternal(err, "ReplaceVideos")
	}
	return nil
}

func (r *PlaylistRepo) recount(tx *gorm.DB, p *model.Playlist) error {
	count := tx.Model(p).Association("Videos").Count()
	p.VideoCount = int(count)
	return tx.Model(p).Update("video_count", p.VideoCount).Error
}
