package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
	"salescrm/middleware"
	"salescrm/utils"
)

// RegisterAgentRoutes 注册销售代表账号管理路由，仅管理员可用
func RegisterAgentRoutes(router *gin.Engine) {
	agentRoutes := router.Group("/sales-agent")
	agentRoutes.Use(middleware.AuthMiddleware())

	agentRoutes.POST("/",
		middleware.PermissionMiddleware(utils.ResourceSalesAgents, utils.ActionCreate),
		controllers.CreateSalesAgent)
}
