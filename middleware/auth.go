package middleware

import (
	"net/http"
	"strings"

	"salescrm/models"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 认证中间件
// 解析Bearer令牌并把当前用户放入上下文，失败统一返回401标准响应
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// 检查Authorization头
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortRespond(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			utils.AbortRespond(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		// 只接受access令牌，refresh令牌不能用于访问资源
		claims, err := utils.ParseToken(token, utils.TokenTypeAccess)
		if err != nil {
			utils.Logger.Info().Err(err).Str("path", c.Request.URL.Path).Msg("Token验证失败")
			utils.AbortRespond(c, http.StatusUnauthorized, "Token is invalid or expired.")
			return
		}

		c.Set("user", &models.AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// PermissionMiddleware 权限中间件
// 按权限表做请求级的角色门禁，行级归属过滤在控制器/仓储里完成
func PermissionMiddleware(resource string, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUser(c)
		if err != nil {
			utils.AbortRespond(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}

		if !utils.HasPermission(user.Role, resource, action) {
			utils.Logger.Info().
				Str("username", user.Username).
				Str("role", string(user.Role)).
				Str("resource", resource).
				Str("action", action).
				Msg("权限不足")
			utils.AbortRespond(c, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}

		c.Next()
	}
}
