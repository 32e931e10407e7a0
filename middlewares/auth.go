package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/appctx"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
)

// AuthMiddleware requires a valid bearer token and a live redis session for
// the token's user. Claims land in the request context for handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "success": false, "message": "unauthorized"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		validate, err := utils.JwtValidate(token)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "success": false, "message": "unauthorized"})
			c.Abort()
			return
		}

		claims, ok := validate.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "success": false, "message": "unauthorized"})
			c.Abort()
			return
		}

		// Logout removes the cached session; a token without one is dead
		// even if its signature still verifies.
		if _, found, err := config.GetRedisValue("User:" + claims.Email); err != nil || !found {
			c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "success": false, "message": "session expired"})
			c.Abort()
			return
		}

		ctx := appctx.Set(c.Request.Context(), appctx.ContextKeyToken, token)
		ctx = appctx.Set(ctx, appctx.ContextKeyUserId, claims.ID)
		ctx = appctx.Set(ctx, appctx.ContextKeyEmail, claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
