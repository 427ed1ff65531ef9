package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
)

// Fail 统一错误出口：业务错误自带 HTTP 状态码；其余一律 500 且不外漏细节
func Fail(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) && de.Code != CodeServerError {
		c.JSON(de.Code, gin.H{"error": de.Error()})
		return
	}
	_ = c.Error(err) // 交给 AccessLog 打印
	c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternal})
}

// Abort 中间件用：写出错误并截断后续 handler
func Abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}
