package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/jmontero22c/BRM-Backend/internal/core/auth"
	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/repo"
	"github.com/jmontero22c/BRM-Backend/internal/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库按连接隔离，固定单连接
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Purchase{},
		&domain.PurchaseLine{},
	))
	return db
}

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: 24 * time.Hour}
}

func newPurchaseService(db *gorm.DB) *service.PurchaseService {
	return service.NewPurchaseService(db, repo.NewPurchaseRepo(db), nil)
}

func newProductService(db *gorm.DB) *service.ProductService {
	return service.NewProductService(repo.NewProductRepo(db), repo.NewPurchaseRepo(db), nil)
}

func seedUser(t *testing.T, db *gorm.DB, email string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{Name: "t", Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, lot, name string, price float64, qty int) *domain.Product {
	t.Helper()
	p := &domain.Product{
		LotNumber:  lot,
		Name:       name,
		Price:      price,
		Quantity:   qty,
		IntakeDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func productQty(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p domain.Product
	require.NoError(t, db.First(&p, id).Error)
	return p.Quantity
}

func purchaseCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Purchase{}).Count(&n).Error)
	return n
}

func ctx() context.Context { return context.Background() }

func ptr[T any](v T) *T { return &v }
