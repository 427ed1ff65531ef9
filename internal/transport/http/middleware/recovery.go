package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "github.com/jmontero22c/BRM-Backend/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
			}
		}()
		c.Next()
	}
}
