package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError 自定义API错误
type ApiError struct {
	StatusCode int
	Message    string
}

// Error 实现error接口
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError 创建API错误
func NewApiError(message string, statusCode int) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// HandleError 处理错误并返回标准响应
// 非ApiError一律按500处理，细节只进日志不回给调用方
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}

	LogError(err, map[string]interface{}{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}, "API错误")

	if apiErr, ok := err.(*ApiError); ok {
		Respond(c, apiErr.StatusCode, apiErr.Message, nil)
		return
	}

	Respond(c, http.StatusInternalServerError, "Internal server error.", nil)
}
