package domain

import (
	"context"
	"time"
)

// Product 库存商品；LotNumber 是对外的业务键，内部主键之外全局唯一
type Product struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LotNumber  string    `gorm:"uniqueIndex;size:64;not null" json:"lotNumber"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	IntakeDate time.Time `gorm:"type:date;not null" json:"intakeDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByLot(ctx context.Context, lot string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) (int64, error)
}
