package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakao-farmer/platform-api/internal/authz"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/transport/http/dto"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

func (h *Handler) createLecture(c *gin.Context) {
	var body dto.LectureCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	lecture := model.Lecture{
		Title:       body.Title,
		Description: body.Description,
		Content:     body.Content,
		UserID:      user.ID,
	}
	if err := h.lectures.CreateLecture(c.Request.Context(), &lecture); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lecture)
}

func (h *Handler) listLectures(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lectures, err := h.lectures.ListLectures(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lectures)
}

func (h *Handler) getLecture(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	lecture, err := h.lectures.GetLectureByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lecture)
}

func (h *Handler) updateLecture(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body dto.LectureCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lecture, err := h.lectures.GetLectureByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), lecture); err != nil {
		h.handleError(c, err)
		return
	}

	lecture.Title = body.Title
	lecture.Description = body.Description
	lecture.Content = body.Content
	if err := h.lectures.UpdateLecture(c.Request.Context(), &lecture); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lecture)
}

func (h *Handler) deleteLecture(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	lecture, err := h.lectures.GetLectureByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), lecture); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.lectures.DeleteLecture(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
