package controllers

import (
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/service"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// CreateSalesAgent 创建销售代表账号，仅管理员可用
// 无论payload里的role写什么，创建出来的账号都是sales_agent
func CreateSalesAgent(c *gin.Context) {
	var req models.CreateSalesAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}

	errs := fieldErrors{}
	if req.Username == "" {
		errs.add("username", msgFieldRequired)
	}
	if req.Email == "" {
		errs.add("email", msgFieldRequired)
	} else if !utils.IsValidEmail(req.Email) {
		errs.add("email", "Enter a valid email address.")
	}
	if req.Password == "" {
		errs.add("password", msgFieldRequired)
	}

	if req.Username != "" {
		if _, err := repository.Users.FindByUsername(req.Username); err == nil {
			errs.add("username", "A user with that username already exists.")
		}
	}
	if req.Email != "" {
		if _, err := repository.Users.FindByEmail(utils.NormalizeEmail(req.Email)); err == nil {
			errs.add("email", "A user with that email already exists.")
		}
	}

	if !errs.empty() {
		utils.Respond(c, http.StatusBadRequest, msgInvalidBody, errs)
		return
	}

	user, err := service.CreateUser(req.Username, req.Email, models.UserRoleSALES_AGENT, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Logger.Info().Str("username", user.Username).Msg("销售代表账号创建成功")
	utils.Respond(c, http.StatusCreated, "Sales agent created successfully.", models.NewUserResponse(*user))
}
