package repo

import (
	"context"

	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

// PlaylistRepo owns the playlist rows and the playlist/video relation.
// Implementations must keep VideoCount equal to the relation's
// cardinality after every mutation.
type PlaylistRepo interface {
	CreatePlaylist(ctx context.Context, p *model.Playlist, videos []model.Video) error

	GetPlaylistByID(ctx context.Context, id uint) (model.Playlist, error)

	ListPlaylists(ctx context.Context, skip, limit int) ([]model.Playlist, error)

	UpdatePlaylist(ctx context.Context, p *model.Playlist) error

	DeletePlaylist(ctx context.Context, id uint) error

	ListPlaylistVideos(ctx context.Context, playlistID uint) ([]model.Video, error)

	HasVideo(ctx context.Context, playlistID, videoID uint) (bool, error)

	AddVideo(ctx context.Context, p *model.Playlist, v model.Video) error

	ReplaceVideos(ctx context.Context, p *model.Playlist, videos []model.Video) error
}
