package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jmontero22c/BRM-Backend/internal/core/auth"
	"github.com/jmontero22c/BRM-Backend/internal/core/cache"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/repo"
	"github.com/jmontero22c/BRM-Backend/internal/service"
	"github.com/jmontero22c/BRM-Backend/internal/transport/http/handler"
	mdw "github.com/jmontero22c/BRM-Backend/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 依赖
	userRepo := repo.NewUserRepo(db)
	productRepo := repo.NewProductRepo(db)
	purchaseRepo := repo.NewPurchaseRepo(db)

	authH := handler.NewAuthHandler(service.NewAuthService(userRepo, jwter))
	productH := handler.NewProductHandler(service.NewProductService(productRepo, purchaseRepo, c))
	purchaseH := handler.NewPurchaseHandler(service.NewPurchaseService(db, purchaseRepo, c))

	authn := mdw.Authenticate(jwter, userRepo)
	adminOnly := mdw.Authorize(domain.RoleAdministrator)
	customerOnly := mdw.Authorize(domain.RoleCustomer)

	// 功能域模块按优先级挂到 /api/v1
	MountAPIModules(r.Group("/api/v1"),
		authRoutes{h: authH},
		productRoutes{h: productH, authn: authn, admin: adminOnly},
		purchaseRoutes{h: purchaseH, authn: authn, admin: adminOnly, customer: customerOnly},
	)

	return r
}
