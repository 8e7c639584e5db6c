package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/porchfest/backend/internal/helpers"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// JWTAuthMiddleware requires a valid access token and stores the caller's
// user id on the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing bearer token.")
			c.Abort()
			return
		}

		userID, err := helpers.ParseToken(token, helpers.TokenTypeAccess)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// JWTRefreshMiddleware is the same gate for the refresh endpoint, which
// accepts refresh tokens only.
func JWTRefreshMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Missing bearer token.")
			c.Abort()
			return
		}

		userID, err := helpers.ParseToken(token, helpers.TokenTypeRefresh)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired refresh token.")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
