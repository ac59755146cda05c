package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope 标准响应结构，所有接口统一使用
type Envelope struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEnvelope 构造标准响应，status 完全由状态码推导
func NewEnvelope(code int, message string, data interface{}) Envelope {
	status := "success"
	if code >= 400 {
		status = "error"
	}
	return Envelope{
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	}
}

// Respond 写出标准响应
func Respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, NewEnvelope(code, message, data))
}

// AbortRespond 中间件里终止请求并写出标准响应
func AbortRespond(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewEnvelope(code, message, nil))
}
