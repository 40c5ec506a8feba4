package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates the management surface. Session issuance lives in an
// external service; this side only checks the shared admin token it hands out.
type AuthMiddleware interface {
	RequireAdmin() gin.HandlerFunc
	// RequireAdminWhen gates the request only when pred holds, for routes
	// that are public except for certain query shapes.
	RequireAdminWhen(pred func(c *gin.Context) bool) gin.HandlerFunc
}

type authMiddleware struct {
	adminToken string
}

func (a *authMiddleware) authorized(c *gin.Context) bool {
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		token = c.Query("token")
	}
	return a.adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) == 1
}

func (a *authMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authorized(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}

func (a *authMiddleware) RequireAdminWhen(pred func(c *gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pred(c) && !a.authorized(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(adminToken string) AuthMiddleware {
	return &authMiddleware{
		adminToken: adminToken,
	}
}
