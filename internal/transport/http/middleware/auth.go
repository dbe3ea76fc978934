package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kakao-farmer/platform-api/internal/auth/service"
	domainErrors "github.com/kakao-farmer/platform-api/internal/domain/errors"
	"github.com/kakao-farmer/platform-api/internal/domain/model"
)

const userContextKey = "currentUser"

// RequireAuth extracts the bearer credential, resolves it to a user and
// stores the user in the request context. Resolution happens once per
// request; nothing is cached across requests.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			// A failing store is not a credential problem. Only token
			// faults earn a 401; anything else is a server fault.
			if domainErrors.IsInternal(err) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			msg := "invalid token"
			if domainErrors.IsExpiredToken(err) {
				msg = "token expired"
			}
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by RequireAuth. Calling it
// from a route without the middleware is a programming error.
func CurrentUser(c *gin.Context) model.User {
	return c.MustGet(userContextKey).(model.User)
}
