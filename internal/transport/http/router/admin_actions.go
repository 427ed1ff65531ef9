package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	httpez "github.com/jmontero22c/BRM-Backend/internal/transport/http/ez"
)

// 后台接口集中在这一个模块里
type adminActions struct {
	db *gorm.DB
}

func (m adminActions) MountAdmin(admin *gin.RouterGroup) {
	db := m.db
	ezAdmin := httpez.New(admin)

	// --- GET /admin/v1/users  用户目录 ---
	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 email/name 模糊搜
	}
	type row struct {
		ID        uint        `json:"id"`
		Email     string      `json:"email"`
		Name      string      `json:"name"`
		Role      domain.Role `json:"role"`
		CreatedAt time.Time   `json:"createdAt"`
	}
	type listOut struct {
		Total int64 `json:"total"`
		Items []row `json:"items"`
	}

	httpez.RegisterAction[listQ, listOut](ezAdmin, db, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			q := tx.Model(&domain.User{})
			if s := strings.TrimSpace(in.Q); s != "" {
				like := "%" + s + "%"
				q = q.Where("email LIKE ? OR name LIKE ?", like, like)
			}

			var total int64
			if err := q.Count(&total).Error; err != nil {
				return listOut{}, httpez.Internal("count users failed", err)
			}

			var us []domain.User
			if err := q.Order("created_at DESC").Limit(in.Limit).Offset(in.Offset).Find(&us).Error; err != nil {
				return listOut{}, httpez.Internal("list users failed", err)
			}

			out := listOut{Total: total, Items: make([]row, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, row{
					ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt,
				})
			}
			return out, nil
		},
	})

	// --- GET /admin/v1/purchases  全部订单（含明细/商品/买家） ---
	httpez.RegisterAction[struct{}, []domain.Purchase](ezAdmin, db, httpez.Action[struct{}, []domain.Purchase]{
		Method: http.MethodGet,
		Path:   "/purchases",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]domain.Purchase, error) {
			var ps []domain.Purchase
			err := tx.Preload("Lines").Preload("Lines.Product").Preload("User").
				Order("purchased_at desc").
				Find(&ps).Error
			if err != nil {
				return nil, httpez.Internal("list purchases failed", err)
			}
			return ps, nil
		},
	})
}
