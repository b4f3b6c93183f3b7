package middleware

import (
	"net/http"
	"strings"

	"github.com/Aiosol/ccf-bakery-sub001/entity"
	"github.com/Aiosol/ccf-bakery-sub001/util"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Fallback routes by role: where a client should navigate when it reaches a
// route its role does not permit.
var roleFallbacks = map[entity.Role]string{
	entity.RoleAdmin:  "/dashboard",
	entity.RoleBaker:  "/production",
	entity.RoleViewer: "/recipes",
}

// AuthenticateJWT verifies the bearer token and injects the session into the
// request context. One synchronous check per request, no retries.
func AuthenticateJWT(jwtSecretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header is missing",
				"login": "/login",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := util.ValidateJWT(tokenString, jwtSecretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
				"login": "/login",
			})
			return
		}

		c.Set(sessionKey, entity.Session{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// RequireRole gates a route group on a role. A session lacking the role gets
// 403 with its role-appropriate fallback route; protected content is never
// rendered.
func RequireRole(required entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "no session",
				"login": "/login",
			})
			return
		}
		if !session.HasRole(required) {
			fallback := roleFallbacks[session.Role]
			if fallback == "" {
				fallback = "/recipes"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "insufficient role",
				"fallback": fallback,
			})
			return
		}
		c.Next()
	}
}

// GetSession returns the session injected by AuthenticateJWT.
func GetSession(c *gin.Context) (entity.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entity.Session{}, false
	}
	session, ok := v.(entity.Session)
	return session, ok
}
