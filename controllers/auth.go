package controllers

import (
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// ObtainToken 用户名密码换取access+refresh令牌对
func ObtainToken(c *gin.Context) {
	var req models.ObtainTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}

	user, err := repository.Users.FindByUsername(req.Username)
	if err != nil {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 用户名不存在")
		utils.Respond(c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}

	if !user.IsActive || !utils.VerifyPassword(req.Password, user.Password) {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 密码错误或账号停用")
		utils.Respond(c, http.StatusUnauthorized, "Invalid credentials.", nil)
		return
	}

	pair, err := utils.GenerateTokenPair(*user)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Token created successfully.", pair)
}

// RefreshToken 用refresh令牌换取新的access令牌
func RefreshToken(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Token refresh failed.", nil)
		return
	}

	claims, err := utils.ParseToken(req.Refresh, utils.TokenTypeRefresh)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Token refresh failed.", nil)
		return
	}

	// 按当前用户状态重新签发，期间被停用的账号不能续期
	user, err := repository.Users.FindByID(claims.UserID)
	if err != nil || !user.IsActive {
		utils.Respond(c, http.StatusUnauthorized, "Token refresh failed.", nil)
		return
	}

	access, err := utils.GenerateAccessToken(*user)
	if err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Token refresh failed.", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Token refreshed successfully.", gin.H{"access": access})
}

// VerifyToken 校验令牌有效性，access和refresh都接受
func VerifyToken(c *gin.Context) {
	var req models.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Token is invalid or expired.", nil)
		return
	}

	if _, err := utils.ParseToken(req.Token, ""); err != nil {
		utils.Respond(c, http.StatusUnauthorized, "Token is invalid or expired.", nil)
		return
	}

	utils.Respond(c, http.StatusOK, "Token is valid.", nil)
}
