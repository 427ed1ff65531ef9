package service

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/jmontero22c/BRM-Backend/internal/core/cache"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

type PurchaseService struct {
	db        *gorm.DB
	purchases domain.PurchaseRepository
	cache     *cache.Cache // 可为 nil
}

func NewPurchaseService(db *gorm.DB, purchases domain.PurchaseRepository, c *cache.Cache) *PurchaseService {
	return &PurchaseService{db: db, purchases: purchases, cache: c}
}

type PurchaseResult struct {
	Message  string           `json:"message"`
	Purchase *domain.Purchase `json:"purchase"`
}

// Create 下单：校验 → 单事务内逐项锁定库存、按当前价记快照、累计总额 →
// 落 purchase + lines → 提交。任何一项失败整单回滚，库存不留半点变化。
func (s *PurchaseService) Create(ctx context.Context, userID uint, in *validate.PurchaseInput) (*PurchaseResult, error) {
	if msg := validate.Purchase(in); msg != "" {
		return nil, domain.Validation(msg)
	}

	var purchaseID uint
	touched := make([]uint, 0, len(in.Items))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total float64
		lines := make([]domain.PurchaseLine, 0, len(in.Items))

		for _, item := range in.Items {
			pid := uint(item.ProductID)
			qty := int(item.Quantity)

			var p domain.Product
			if err := tx.First(&p, pid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.NotFoundf("Producto con ID %d no encontrado", pid)
				}
				return err
			}
			if p.Quantity < qty {
				return domain.InsufficientStock(p.Name, p.Quantity)
			}

			// 带条件的原子扣减：并发下也绝不可能把库存扣成负数。
			// 同一单里重复出现的商品走到这里时，事务内已能看到上一次的扣减。
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND quantity >= ?", pid, qty).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				_ = tx.First(&p, pid).Error
				return domain.InsufficientStock(p.Name, p.Quantity)
			}

			total += p.Price * float64(qty)
			lines = append(lines, domain.PurchaseLine{
				ProductID: pid,
				Quantity:  qty,
				UnitPrice: p.Price, // 下单时刻的价格快照
			})
			touched = append(touched, pid)
		}

		purchase := domain.Purchase{
			UserID:      userID,
			PurchasedAt: time.Now(),
			Total:       math.Round(total*100) / 100,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].PurchaseID = purchase.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		purchaseID = purchase.ID
		return nil
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, domain.Internal("create purchase failed", err)
	}

	if s.cache != nil {
		keys := make([]string, 0, len(touched))
		for _, pid := range touched {
			keys = append(keys, productKey(pid))
		}
		s.cache.Del(ctx, keys...)
	}

	// 提交后回读完整订单（含明细和商品）
	p, err := s.purchases.FindByID(ctx, purchaseID, false)
	if err != nil || p == nil {
		return nil, domain.Internal("reload purchase failed", err)
	}
	return &PurchaseResult{Message: "Compra realizada exitosamente", Purchase: p}, nil
}

func (s *PurchaseService) History(ctx context.Context, userID uint) ([]domain.Purchase, error) {
	ps, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Internal("list purchases failed", err)
	}
	return ps, nil
}

// GetByID 非管理员只能看自己的单，别人的单按不存在处理
func (s *PurchaseService) GetByID(ctx context.Context, id uint, requester *domain.User) (*domain.Purchase, error) {
	p, err := s.purchases.FindByID(ctx, id, true)
	if err != nil {
		return nil, domain.Internal("db error", err)
	}
	if p == nil || (requester.Role != domain.RoleAdministrator && p.UserID != requester.ID) {
		return nil, domain.NotFound("Compra no encontrada")
	}
	return p, nil
}

func (s *PurchaseService) All(ctx context.Context) ([]domain.Purchase, error) {
	ps, err := s.purchases.ListAll(ctx)
	if err != nil {
		return nil, domain.Internal("list purchases failed", err)
	}
	return ps, nil
}
