package middleware

import (
	"net/http"
	"strings"

	"redakce-cms/models"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// BearerAuth resolves the Authorization header against the token store
// and injects the request principal. The API never touches session
// cookies.
func BearerAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Neplatný token."})
			return
		}

		user, err := authService.ResolveToken(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Neplatný token."})
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Next()
	}
}

// RequireCapability gates a route group on one capability; ownership
// rules stay in the services where the row is at hand.
func RequireCapability(action models.Action, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Neplatný token."})
			return
		}
		if !p.Can(action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": message})
			return
		}
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
