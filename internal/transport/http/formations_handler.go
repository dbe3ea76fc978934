package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakao-farmer/platform-api/internal/authz"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
	"github.com/kakao-farmer/platform-api/internal/transport/http/dto"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

func (h *Handler) createFormation(c *gin.Context) {
	var body dto.FormationCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	formation := model.Formation{
		Title:       body.Title,
		Description: body.Description,
		UserID:      user.ID,
	}
	if err := h.formations.CreateFormation(c.Request.Context(), &formation); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, formation)
}

func (h *Handler) listFormations(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	formations, err := h.formations.ListFormations(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, formations)
}

func (h *Handler) getFormation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	formation, err := h.formations.GetFormationByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, formation)
}

func (h *Handler) updateFormation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body dto.FormationCreateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	formation, err := h.formations.GetFormationByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), formation); err != nil {
		h.handleError(c, err)
		return
	}

	formation.Title = body.Title
	formation.Description = body.Description
	if err := h.formations.UpdateFormation(c.Request.Context(), &formation); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, formation)
}

func (h *Handler) deleteFormation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	formation, err := h.formations.GetFormationByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := authz.Authorize(middleware.CurrentUser(c), formation); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.formations.DeleteFormation(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
