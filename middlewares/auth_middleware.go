package middlewares

import (
	"net/http"
	"strings"

	"github.com/Prashant8008/Fitness-Ai/utils"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the session cookie carrying the signed token for the
// HTML views.
const AuthCookie = "auth_token"

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth protects the HTML views: anonymous requests are redirected
// to the login page instead of erroring.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.ParseJWT(jwtSecret, tokenFromRequest(c))
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// RequireAuthAPI protects the JSON API with a 401 instead of a redirect.
func RequireAuthAPI(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.ParseJWT(jwtSecret, tokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by the middleware.
func UserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
