package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RenderError 统一的错误响应
func RenderError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// paramID 解析路径中的正整数 ID，失败时直接返回 400
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		RenderError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt 读取整数查询参数，缺省时返回 fallback
func queryInt(c *gin.Context, name string, fallback int64) (int64, bool) {
	v := c.Query(name)
	if v == "" {
		return fallback, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		RenderError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}
