package middleware

import (
	"net/http"
	"strings"

	"github.com/Norahnjesh/Transport-Solution/internal/token"
	"github.com/gin-gonic/gin"
)

// TokenParser validates a bearer token and returns its claims.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// AuthMiddleware guards routes behind a valid Bearer token. The parser is
// passed in rather than read from process-global state.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header required",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := parser.Parse(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}
