package routes

import (
	"github.com/gin-gonic/gin"

	"salescrm/controllers"
	"salescrm/middleware"
	"salescrm/utils"
)

// RegisterProposalRoutes 注册报价单相关路由
func RegisterProposalRoutes(router *gin.Engine) {
	proposalRoutes := router.Group("/proposals")
	proposalRoutes.Use(middleware.AuthMiddleware())

	proposalRoutes.GET("/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionRead),
		controllers.GetProposalList)
	proposalRoutes.POST("/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionCreate),
		controllers.CreateProposal)
	proposalRoutes.GET("/:id/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionRead),
		controllers.GetProposalDetail)
	proposalRoutes.PUT("/:id/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionUpdate),
		controllers.UpdateProposal)
	proposalRoutes.PATCH("/:id/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionUpdate),
		controllers.PatchProposal)
	proposalRoutes.DELETE("/:id/",
		middleware.PermissionMiddleware(utils.ResourceProposals, utils.ActionDelete),
		controllers.DeleteProposal)
}
