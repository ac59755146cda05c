package models

import "time"

// UserRole 用户角色枚举
type UserRole string

const (
	UserRoleADMIN       UserRole = "admin"       // 管理员
	UserRoleSALES_AGENT UserRole = "sales_agent" // 销售代表
)

// User 用户模型
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // 不返回密码
	Role        UserRole  `json:"role" gorm:"size:20;not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:true"`
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserResponse 用户输出(不含密码及内部标记)
type UserResponse struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
}

// NewUserResponse 构造用户输出
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// AuthUser 当前登录用户(来自JWT claims)
type AuthUser struct {
	ID       uint
	Username string
	Role     UserRole
}

// 认证相关请求和响应结构
type (
	// ObtainTokenRequest 获取令牌请求
	ObtainTokenRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	// RefreshTokenRequest 刷新令牌请求
	RefreshTokenRequest struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	// VerifyTokenRequest 校验令牌请求
	VerifyTokenRequest struct {
		Token string `json:"token" binding:"required"`
	}

	// TokenPair 令牌对
	TokenPair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	// CreateSalesAgentRequest 创建销售代表请求
	// role 字段会被忽略，创建出的账号始终是 sales_agent
	CreateSalesAgentRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
)
