package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/core/auth"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	resp "github.com/jmontero22c/BRM-Backend/internal/transport/http/response"
)

const KeyUser = "authUser"

// Authenticate Bearer token → 活的用户记录；token 指向的用户已不存在也算无效
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "Token inválido")
			return
		}
		u, err := users.FindByID(c.Request.Context(), claims.UID)
		if err != nil || u == nil {
			resp.Abort(c, http.StatusUnauthorized, "Token inválido")
			return
		}
		c.Set(KeyUser, u)
		c.Next()
	}
}

// Authorize 必须挂在 Authenticate 之后
func Authorize(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Next()
				return
			}
		}
		resp.Abort(c, http.StatusForbidden, "No tienes permisos para realizar esta acción")
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(KeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
