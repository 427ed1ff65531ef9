package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jmontero22c/BRM-Backend/internal/transport/http/handler"
)

// 店面端的三个功能域。鉴权/角色中间件由引擎构好传进来，
// 模块只负责挂自己的路由

type authRoutes struct {
	h *handler.AuthHandler
}

func (m authRoutes) Priority() int { return 10 }

func (m authRoutes) MountAPI(g *gin.RouterGroup) {
	g.POST("/auth/register", m.h.Register)
	g.POST("/auth/login", m.h.Login)
}

type productRoutes struct {
	h     *handler.ProductHandler
	authn gin.HandlerFunc // Bearer → 活的用户
	admin gin.HandlerFunc // 仅 Administrator
}

func (m productRoutes) Priority() int { return 20 }

func (m productRoutes) MountAPI(g *gin.RouterGroup) {
	// 目录是公开的
	g.GET("/products", m.h.List)
	g.GET("/products/:id", m.h.Get)

	adm := g.Group("", m.authn, m.admin)
	adm.POST("/products", m.h.Create)
	adm.PUT("/products/:id", m.h.Update)
	adm.DELETE("/products/:id", m.h.Delete)
}

type purchaseRoutes struct {
	h        *handler.PurchaseHandler
	authn    gin.HandlerFunc
	admin    gin.HandlerFunc
	customer gin.HandlerFunc
}

func (m purchaseRoutes) Priority() int { return 30 }

func (m purchaseRoutes) MountAPI(g *gin.RouterGroup) {
	authed := g.Group("", m.authn)
	authed.GET("/purchases/:id", m.h.GetByID)

	adm := authed.Group("", m.admin)
	adm.GET("/purchases", m.h.All)

	cust := authed.Group("", m.customer)
	cust.POST("/purchases", m.h.Create)
	cust.GET("/purchases/history", m.h.History)
}
