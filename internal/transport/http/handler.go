package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kakao-farmer/platform-api/internal/auth/service"
	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/repo"
	"github.com/kakao-farmer/platform-api/internal/transport/http/middleware"
)

type Handler struct {
	auth       service.AuthService
	videos     repo.VideoRepo
	playlists  repo.PlaylistRepo
	formations repo.FormationRepo
	lectures   repo.LectureRepo
	log        *zap.Logger
}

func NewHandler(
	auth service.AuthService,
	videos repo.VideoRepo,
	playlists repo.PlaylistRepo,
	formations repo.FormationRepo,
	lectures repo.LectureRepo,
	log *zap.Logger,
) *Handler {
	return &Handler{
		auth:       auth,
		videos:     videos,
		playlists:  playlists,
		formations: formations,
		lectures:   lectures,
		log:        log,
	}
}

// RegisterRoutes wires every endpoint onto the engine. Reads and lists
// are public; every mutation on an owned resource sits behind the auth
// middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authRequired := middleware.RequireAuth(h.auth)

	users := r.Group("/users")
	{
		users.POST("/register", h.register)
		users.POST("/login", h.login)
	}

	videos := r.Group("/videos")
	{
		videos.GET("", h.listVideos)
		videos.GET("/:id", h.getVideo)
		videos.POST("", authRequired, h.createVideo)
		videos.PUT("/:id", authRequired, h.updateVideo)
		videos.DELETE("/:id", authRequired, h.deleteVideo)
	}

	playlists := r.Group("/playlists")
	{
		playlists.GET("", h.listPlaylists)
		playlists.GET("/:id", h.getPlaylist)
		playlists.GET("/:id/videos", h.listPlaylistVideos)
		playlists.POST("", authRequired, h.createPlaylist)
		playlists.PUT("/:id", authRequired, h.updatePlaylist)
		playlists.DELETE("/:id", authRequired, h.deletePlaylist)
		playlists.POST("/:id/add-video/:videoID", authRequired, h.addVideoToPlaylist)
	}

	formations := r.Group("/formations")
	{
		formations.GET("", h.listFormations)
		formations.GET("/:id", h.getFormation)
		formations.POST("", authRequired, h.createFormation)
		formations.PUT("/:id", authRequired, h.updateFormation)
		formations.DELETE("/:id", authRequired, h.deleteFormation)
	}

	lectures := r.Group("/lectures")
	{
		lectures.GET("", h.listLectures)
		lectures.GET("/:id", h.getLecture)
		lectures.POST("", authRequired, h.createLecture)
		lectures.PUT("/:id", authRequired, h.updateLecture)
		lectures.DELETE("/:id", authRequired, h.deleteLecture)
	}
}

// handleError maps the domain taxonomy onto HTTP statuses. The three
// rejection kinds 401/403/404 stay distinct; anything unexpected is a
// 500 with a generic body.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case domainErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domainErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domainErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case domainErrors.IsExpiredToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
	case domainErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case domainErrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "action not allowed"})
	case domainErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		_ = c.Error(err)
		h.log.Error("unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}
