package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
	"salescrm/middleware"
	"salescrm/utils"
)

// RegisterServiceRoutes 注册服务目录相关路由
func RegisterServiceRoutes(router *gin.Engine) {
	serviceRoutes := router.Group("/services")
	serviceRoutes.Use(middleware.AuthMiddleware())

	serviceRoutes.GET("/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionRead),
		controllers.GetServiceList)
	serviceRoutes.POST("/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionCreate),
		controllers.CreateService)
	serviceRoutes.GET("/:id/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionRead),
		controllers.GetServiceDetail)
	serviceRoutes.PUT("/:id/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionUpdate),
		controllers.UpdateService)
	serviceRoutes.PATCH("/:id/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionUpdate),
		controllers.PatchService)
	serviceRoutes.DELETE("/:id/",
		middleware.PermissionMiddleware(utils.ResourceServices, utils.ActionDelete),
		controllers.DeleteService)
}
