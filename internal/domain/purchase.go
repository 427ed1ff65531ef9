package domain

import (
	"context"
	"time"
)

// Purchase 一次下单；Total 为各明细小计之和，创建后不再变更
type Purchase struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"userId"`
	PurchasedAt time.Time      `gorm:"not null;index" json:"purchasedAt"`
	Total       float64        `gorm:"type:decimal(10,2);not null" json:"total"`
	Lines       []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (Purchase) TableName() string { return "purchases" }

// PurchaseLine 明细；UnitPrice 是下单时刻的快照，与商品后续改价无关
type PurchaseLine struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	PurchaseID uint     `gorm:"not null;index" json:"purchaseId"`
	ProductID  uint     `gorm:"not null;index" json:"productId"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Product    *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
}

func (PurchaseLine) TableName() string { return "purchase_lines" }

type PurchaseRepository interface {
	FindByID(ctx context.Context, id uint, withUser bool) (*Purchase, error)
	ListByUser(ctx context.Context, userID uint) ([]Purchase, error)
	ListAll(ctx context.Context) ([]Purchase, error)
	CountLinesByProduct(ctx context.Context, productID uint) (int64, error)
}
