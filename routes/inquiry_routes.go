package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
	"salescrm/middleware"
	"salescrm/utils"
)

// RegisterInquiryRoutes 注册咨询单相关路由
func RegisterInquiryRoutes(router *gin.Engine) {
	inquiryRoutes := router.Group("/inquiries")
	inquiryRoutes.Use(middleware.AuthMiddleware())

	inquiryRoutes.GET("/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionRead),
		controllers.GetInquiryList)
	inquiryRoutes.POST("/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionCreate),
		controllers.CreateInquiry)
	inquiryRoutes.GET("/:id/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionRead),
		controllers.GetInquiryDetail)
	inquiryRoutes.PUT("/:id/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionUpdate),
		controllers.UpdateInquiry)
	inquiryRoutes.PATCH("/:id/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionUpdate),
		controllers.PatchInquiry)
	inquiryRoutes.DELETE("/:id/",
		middleware.PermissionMiddleware(utils.ResourceInquiries, utils.ActionDelete),
		controllers.DeleteInquiry)
}
