package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	p, err := svc.Create(ctx(), &validate.ProductInput{
		LotNumber:  ptr("L1"),
		Name:       ptr("Café"),
		Price:      ptr(10.50),
		Quantity:   ptr(5.0),
		IntakeDate: ptr("2024-01-15"),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "L1", p.LotNumber)
	assert.Equal(t, 10.50, p.Price)
	assert.Equal(t, 5, p.Quantity)

	// 同批号第二次创建要撞唯一键
	_, err = svc.Create(ctx(), &validate.ProductInput{
		LotNumber:  ptr("L1"),
		Name:       ptr("Otro"),
		Price:      ptr(1.0),
		Quantity:   ptr(1.0),
		IntakeDate: ptr("2024-01-15"),
	})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "El número de lote ya existe", de.Error())
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	var de *domain.Error
	_, err := svc.Create(ctx(), &validate.ProductInput{
		Price:      ptr(-1.0),
		Quantity:   ptr(2.5),
		IntakeDate: ptr("ayer"),
	})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Contains(t, de.Error(), "El número de lote es obligatorio.")
	assert.Contains(t, de.Error(), "El nombre del producto es obligatorio.")
	assert.Contains(t, de.Error(), "El precio debe ser un número mayor o igual a 0.")
	assert.Contains(t, de.Error(), "La cantidad disponible debe ser un número mayor o igual a 0.")
	assert.Contains(t, de.Error(), "La fecha de ingreso no es válida.")
}

func TestUpdateProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	p := seedProduct(t, db, "L1", "Café", 10.00, 5)
	seedProduct(t, db, "L2", "Té", 5.00, 3)

	// 部分更新：只动价格
	got, err := svc.Update(ctx(), p.ID, &validate.ProductInput{Price: ptr(12.00)})
	require.NoError(t, err)
	assert.Equal(t, 12.00, got.Price)
	assert.Equal(t, "Café", got.Name)
	assert.Equal(t, "L1", got.LotNumber)

	// 改成别的商品的批号 → 冲突
	var de *domain.Error
	_, err = svc.Update(ctx(), p.ID, &validate.ProductInput{LotNumber: ptr("L2")})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Equal(t, "El número de lote ya existe", de.Error())

	// 自己的批号保持不变不算冲突
	_, err = svc.Update(ctx(), p.ID, &validate.ProductInput{LotNumber: ptr("L1"), Name: ptr("Café Premium")})
	require.NoError(t, err)

	_, err = svc.Update(ctx(), 999, &validate.ProductInput{Price: ptr(1.0)})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 404, de.Code)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	p := seedProduct(t, db, "L1", "Café", 10.00, 5)

	require.NoError(t, svc.Delete(ctx(), p.ID))

	var de *domain.Error
	err := svc.Delete(ctx(), p.ID)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 404, de.Code)
}

// 有历史购买明细的商品不允许删除
func TestDeleteProductWithPurchaseLines(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	u := seedUser(t, db, "cliente@test.com", domain.RoleCustomer)
	p := seedProduct(t, db, "L1", "Café", 10.00, 5)

	_, err := newPurchaseService(db).Create(ctx(), u.ID, &validate.PurchaseInput{
		Items: []validate.PurchaseItem{{ProductID: float64(p.ID), Quantity: 1}},
	})
	require.NoError(t, err)

	var de *domain.Error
	err = svc.Delete(ctx(), p.ID)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 400, de.Code)
	assert.Contains(t, de.Error(), "no puede ser eliminado")

	// 商品还在
	got, err := svc.Get(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "L1", got.LotNumber)
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)

	var de *domain.Error
	_, err := svc.Get(ctx(), 42)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 404, de.Code)
	assert.Equal(t, "Producto no encontrado", de.Error())
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newProductService(db)
	seedProduct(t, db, "L1", "Café", 10.00, 5)
	seedProduct(t, db, "L2", "Té", 5.00, 3)

	ps, err := svc.List(ctx())
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}
