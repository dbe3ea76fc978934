package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakao-farmer/platform-api/internal/authz"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/transport/http/dto"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

func (h *Handler) createVideo(c *gin.Context) {
	var body dto.VideoCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	video := model.Video{
		Title:       body.Title,
		Description: body.Description,
		URL:         body.URL,
		UserID:      user.ID,
	}
	if err := h.videos.CreateVideo(c.Request.Context(), &video); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func (h *Handler) listVideos(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videos, err := h.videos.ListVideos(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) getVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	video, err := h.videos.GetVideoByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) updateVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body dto.VideoCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videos.GetVideoByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), video); err != nil {
		h.handleError(c, err)
		return
	}

	video.Title = body.Title
	video.Description = body.Description
	video.URL = body.URL
	if err := h.videos.UpdateVideo(c.Request.Context(), &video); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) deleteVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	video, err := h.videos.GetVideoByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), video); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.videos.DeleteVideo(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
