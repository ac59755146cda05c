package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 字段校验的固定文案
const (
	msgFieldRequired = "This field is required."
	msgInvalidBody   = "Invalid or missing fields."
	msgInvalidData   = "Invalid data provided."
)

// fieldErrors 字段级错误集合，作为400响应的data返回
type fieldErrors map[string][]string

func (e fieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

func (e fieldErrors) empty() bool {
	return len(e) == 0
}

// parseIDParam 解析路径里的:id，非法时返回false
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// invalidPK 关联主键不存在时的错误文案
func invalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// invalidChoice 枚举字段取值非法时的错误文案
func invalidChoice(value string) string {
	return fmt.Sprintf("\"%s\" is not a valid choice.", value)
}
