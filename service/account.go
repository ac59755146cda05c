package service

import (
	"net/http"

	"salescrm/models"
	"salescrm/repository"
	"salescrm/utils"
)

// 账号创建的校验错误，HandleError直接翻译为400响应
var (
	ErrUsernameRequired error = utils.NewApiError("The Username must be set.", http.StatusBadRequest)
	ErrEmailRequired    error = utils.NewApiError("The Email must be set.", http.StatusBadRequest)
	ErrRoleRequired     error = utils.NewApiError("The Role must be set.", http.StatusBadRequest)
)

func createUser(username, email string, role models.UserRole, password string, superuser bool) (*models.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if role == "" {
		return nil, ErrRoleRequired
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    username,
		Email:       utils.NormalizeEmail(email),
		Password:    hashed,
		Role:        role,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: superuser,
	}
	if err := repository.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser 创建用户
// 用户名、邮箱、角色为必填；邮箱域名部分统一小写；密码在入库前哈希
func CreateUser(username, email string, role models.UserRole, password string) (*models.User, error) {
	return createUser(username, email, role, password, false)
}

// CreateSuperuser 创建超级管理员
// 无论调用方传什么角色，固定为admin，is_staff/is_superuser固定为true
func CreateSuperuser(username, email, password string) (*models.User, error) {
	return createUser(username, email, models.UserRoleADMIN, password, true)
}
