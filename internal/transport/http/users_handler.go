package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "github.com/kakao-farmer/platform-api/internal/auth/dto"
)

func (h *Handler) register(c *gin.Context) {
	var body authdto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.auth.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "user created", "id": id})
}

// login accepts the OAuth2 password grant form shape and answers with a
// bearer token.
func (h *Handler) login(c *gin.Context) {
	var body authdto.LoginDTO
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tok, err := h.auth.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tok.Token,
		"token_type":   "bearer",
	})
}
