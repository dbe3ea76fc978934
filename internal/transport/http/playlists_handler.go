package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakao-farmer/platform-api/internal/authz"
	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/transport/http/dto"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

func (h *Handler) createPlaylist(c *gin.Context) {
	var body dto.PlaylistCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videos, ok := h.resolveVideos(c, body.VideoIDs)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	playlist := model.Playlist{
		Title:       body.Title,
		Description: body.Description,
		URLThumb:    body.URLThumb,
		Price:       body.Price,
		UserID:      user.ID,
	}
	if err := h.playlists.CreatePlaylist(c.Request.Context(), &playlist, videos); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

func (h *Handler) listPlaylists(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlists, err := h.playlists.ListPlaylists(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

func (h *Handler) getPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.playlists.GetPlaylistByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

func (h *Handler) listPlaylistVideos(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if _, err := h.playlists.GetPlaylistByID(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	videos, err := h.playlists.ListPlaylistVideos(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) updatePlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body dto.PlaylistCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlists.GetPlaylistByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), playlist); err != nil {
		h.handleError(c, err)
		return
	}

	playlist.Title = body.Title
	playlist.Description = body.Description
	playlist.URLThumb = body.URLThumb
	if body.Price != nil {
		playlist.Price = body.Price
	}
	if err := h.playlists.UpdatePlaylist(c.Request.Context(), &playlist); err != nil {
		h.handleError(c, err)
		return
	}

	if body.VideoIDs != nil {
		videos, ok := h.resolveVideos(c, body.VideoIDs)
		if !ok {
			return
		}
		if err := h.playlists.ReplaceVideos(c.Request.Context(), &playlist, videos); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, playlist)
}

func (h *Handler) deletePlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.playlists.GetPlaylistByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), playlist); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.playlists.DeletePlaylist(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addVideoToPlaylist(c *gin.Context) {
	playlistID, ok := parseID(c, "id")
	if !ok {
		return
	}
	videoID, ok := parseID(c, "videoID")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	playlist, err := h.playlists.GetPlaylistByID(ctx, playlistID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), playlist); err != nil {
		h.handleError(c, err)
		return
	}

	video, err := h.videos.GetVideoByID(ctx, videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	member, err := h.playlists.HasVideo(ctx, playlistID, videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if member {
		h.handleError(c, domainErrors.NewInvalidArgument("video already in playlist"))
		return
	}

	if err := h.playlists.AddVideo(ctx, &playlist, video); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":         "video added to playlist",
		"playlist_id": playlist.ID,
		"video_count": playlist.VideoCount,
	})
}

// resolveVideos loads every referenced video and rejects the request if
// any id does not exist. Writes false and a 404 response on failure.
func (h *Handler) resolveVideos(c *gin.Context, ids []uint) ([]model.Video, bool) {
	if len(ids) == 0 {
		return nil, true
	}

	videos, err := h.videos.GetVideosByIDs(c.Request.Context(), ids)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	if len(videos) != len(ids) {
		c.JSON(http.StatusNotFound, gin.H{"error": "one or more videos not found"})
		return nil, false
	}
	return videos, true
}
