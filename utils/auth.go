package utils

import (
	"fmt"
	"time"

	"salescrm/config"
	"salescrm/models"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// 令牌类型，写入claims的typ字段
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var authCfg *config.Config

// InitAuth 注入JWT配置，须在环境变量加载完成后调用
func InitAuth(cfg *config.Config) {
	authCfg = cfg
}

func jwtConfig() *config.Config {
	if authCfg == nil {
		authCfg = config.LoadConfig()
	}
	return authCfg
}

// Claims JWT负载
type Claims struct {
	UserID    uint            `json:"user_id"`
	Username  string          `json:"username"`
	Role      models.UserRole `json:"role"`
	TokenType string          `json:"typ"`
	jwt.RegisteredClaims
}

// HashPassword 哈希密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func VerifyPassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GenerateToken 生成指定类型的JWT令牌
func GenerateToken(user models.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtConfig().JWTKey))
	if err != nil {
		Logger.Error().Err(err).Msg("生成token失败")
		return "", err
	}
	return tokenString, nil
}

// GenerateAccessToken 生成access令牌，有效期取配置
func GenerateAccessToken(user models.User) (string, error) {
	return GenerateToken(user, TokenTypeAccess, jwtConfig().AccessTokenTTL)
}

// GenerateTokenPair 生成access+refresh令牌对
func GenerateTokenPair(user models.User) (*models.TokenPair, error) {
	access, err := GenerateToken(user, TokenTypeAccess, jwtConfig().AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateToken(user, TokenTypeRefresh, jwtConfig().RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseToken 解析和验证JWT令牌
// tokenType 非空时要求typ字段匹配
func ParseToken(tokenString string, tokenType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtConfig().JWTKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if tokenType != "" && claims.TokenType != tokenType {
		return nil, fmt.Errorf("unexpected token type: %s", claims.TokenType)
	}
	return claims, nil
}
