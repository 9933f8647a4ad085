package middleware

import (
	"strings"

	"tripstay/response"
	"tripstay/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware kiểm tra JWT và quyền truy cập theo role.
// Không truyền role nào nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(allowedRoles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization token is required.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid token.")
			c.Abort()
			return
		}

		if len(allowedRoles) > 0 {
			allowed := false
			for _, r := range allowedRoles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Forbidden(c, "You do not have permission to perform this action.")
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
