package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port            int
	DatabaseDSN     string
	JWTKey          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Debug           bool

	// 启动时初始化管理员账号使用
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	accessMin, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_TTL_MIN", "15"))
	refreshHours, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_TTL_HOURS", "24"))

	return &Config{
		Port:            port,
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=127.0.0.1 user=crm password=crm dbname=crm port=5432 sslmode=disable"),
		JWTKey:          getEnv("JWT_KEY", "your-secret-key"), // 实际环境应替换为安全密钥
		AccessTokenTTL:  time.Duration(accessMin) * time.Minute,
		RefreshTokenTTL: time.Duration(refreshHours) * time.Hour,
		Debug:           getEnv("GIN_MODE", "debug") == "debug",
		AdminUsername:   getEnv("BOOTSTRAP_ADMIN_USERNAME", "admin"),
		AdminEmail:      getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:   getEnv("BOOTSTRAP_ADMIN_PASSWORD", ""),
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
