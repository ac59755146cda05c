package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
)

// RegisterAuthRoutes 注册认证路由，无需登录即可访问
func RegisterAuthRoutes(router *gin.Engine) {
	authRoutes := router.Group("/auth/token")

	authRoutes.POST("/", controllers.ObtainToken)
	authRoutes.POST("/refresh/", controllers.RefreshToken)
	authRoutes.POST("/verify/", controllers.VerifyToken)
}
