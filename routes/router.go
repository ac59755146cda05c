package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine) {
	// 注册认证路由
	RegisterAuthRoutes(router)

	// 注册账号管理路由
	RegisterAgentRoutes(router)

	// 注册业务资源路由
	RegisterCustomerRoutes(router)
	RegisterInquiryRoutes(router)
	RegisterProposalRoutes(router)
	RegisterServiceRoutes(router)

	// 健康检查路由
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
