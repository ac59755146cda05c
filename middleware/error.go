package middleware

import (
	"salescrm/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 全局错误处理中间件
// 兜底翻译gin错误链里的错误，保证不会有未格式化的错误穿出传输层
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// 已经写出错误响应的不重复处理
		if c.Writer.Status() >= 400 && c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			utils.HandleError(c, c.Errors.Last().Err)
		}
	}
}
