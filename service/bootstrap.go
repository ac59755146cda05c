package service

import (
	"salescrm/config"
	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"
)

// InitializeAdminAccount 启动时确保系统里存在管理员账号
// 已有admin则什么都不做；未配置初始密码时跳过并告警
func InitializeAdminAccount(cfg *config.Config) error {
	count, err := repository.Users.CountByRole(models.UserRoleADMIN)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		utils.Logger.Warn().Msg("未配置BOOTSTRAP_ADMIN_PASSWORD，跳过管理员账号初始化")
		return nil
	}

	admin, err := CreateSuperuser(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	utils.Logger.Info().Str("username", admin.Username).Msg("已创建初始管理员账号")
	return nil
}
