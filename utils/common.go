package utils

import (
	"fmt"
	"regexp"
	"strings"

	"salescrm/models"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail 验证邮箱格式是否有效
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail 规范化邮箱，域名部分统一小写
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// GetUser 从上下文获取当前登录用户
func GetUser(c *gin.Context) (*models.AuthUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser 未授权访问")
	}

	user, ok := currentUser.(*models.AuthUser)
	if !ok {
		return nil, fmt.Errorf("无效的用户信息")
	}
	return user, nil
}
