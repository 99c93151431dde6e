package middleware

import (
	"net/http"
	"time"

	"redakce-cms/config"
	"redakce-cms/models"
	"redakce-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const sessionCookie = "session"
const adminKey = "session_admin"

// SessionClaims is the browser session: the same fields the original
// kept in its signed session cookie, signed here as an HS256 JWT.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Theme    string `json:"theme"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// IssueSession signs a session cookie for the user. admin marks the
// separate admin login, which normal pages ignore.
func IssueSession(c *gin.Context, user *models.User, admin bool) error {
	now := time.Now()
	claims := SessionClaims{
		Username: user.Username,
		Role:     string(user.Role),
		Theme:    user.Theme,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SessionLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.SessionSecret)
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie, signed, int(config.SessionLifetime.Seconds()), "/", "", false, true)
	return nil
}

func ClearSession(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

func parseSession(c *gin.Context) (*SessionClaims, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie == "" {
		return nil, false
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.SessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// SessionAuth guards the logged-in web surface. The user record is
// re-read so role changes and forced resets take effect immediately,
// not at next login.
func SessionAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSession(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, err := authService.GetUserByUsername(claims.Username)
		if err != nil {
			ClearSession(c)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if user.ForcePasswordChange && c.FullPath() != "/change-password" && c.FullPath() != "/logout" {
			c.Redirect(http.StatusSeeOther, "/change-password")
			c.Abort()
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Set(adminKey, claims.Admin)
		c.Next()
	}
}

// OptionalSession resolves the principal when a valid session cookie is
// present and stays quiet otherwise. Public pages use it to personalize
// without forcing a login.
func OptionalSession(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSession(c)
		if !ok {
			c.Next()
			return
		}

		user, err := authService.GetUserByUsername(claims.Username)
		if err != nil {
			c.Next()
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

// AdminSession guards the admin pages on the dedicated admin flag; a
// plain user session does not pass even for an admin-role user.
func AdminSession(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSession(c)
		if !ok || !claims.Admin {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		user, err := authService.GetUserByUsername(claims.Username)
		if err != nil || user.Role != models.RoleAdmin {
			ClearSession(c)
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Set(principalKey, models.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		c.Set(adminKey, true)
		c.Next()
	}
}
