package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
	"salescrm/middleware"
	"salescrm/utils"
)

// RegisterCustomerRoutes 注册客户相关路由
func RegisterCustomerRoutes(router *gin.Engine) {
	customerRoutes := router.Group("/customers")
	customerRoutes.Use(middleware.AuthMiddleware())

	customerRoutes.GET("/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionRead),
		controllers.GetCustomerList)
	customerRoutes.POST("/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionCreate),
		controllers.CreateCustomer)
	customerRoutes.GET("/:id/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionRead),
		controllers.GetCustomerDetail)
	customerRoutes.PUT("/:id/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionUpdate),
		controllers.UpdateCustomer)
	customerRoutes.PATCH("/:id/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionUpdate),
		controllers.PatchCustomer)
	customerRoutes.DELETE("/:id/",
		middleware.PermissionMiddleware(utils.ResourceCustomers, utils.ActionDelete),
		controllers.DeleteCustomer)
}
