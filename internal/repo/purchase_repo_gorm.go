package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
)

type PurchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepo(db *gorm.DB) *PurchaseRepo { return &PurchaseRepo{db: db} }

func (r *PurchaseRepo) FindByID(ctx context.Context, id uint, withUser bool) (*domain.Purchase, error) {
	q := r.db.WithContext(ctx).Preload("Lines").Preload("Lines.Product")
	if withUser {
		q = q.Preload("User")
	}
	var p domain.Purchase
	err := q.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PurchaseRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Purchase, error) {
	var ps []domain.Purchase
	err := r.db.WithContext(ctx).
		Preload("Lines").Preload("Lines.Product").
		Where("user_id = ?", userID).
		Order("purchased_at desc").
		Find(&ps).Error
	return ps, err
}

func (r *PurchaseRepo) ListAll(ctx context.Context) ([]domain.Purchase, error) {
	var ps []domain.Purchase
	err := r.db.WithContext(ctx).
		Preload("Lines").Preload("Lines.Product").Preload("User").
		Order("purchased_at desc").
		Find(&ps).Error
	return ps, err
}

func (r *PurchaseRepo) CountLinesByProduct(ctx context.Context, productID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.PurchaseLine{}).
		Where("product_id = ?", productID).Count(&n).Error
	return n, err
}
