package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmontero22c/BRM-Backend/internal/validate"
)

func ptr[T any](v T) *T { return &v }

func TestRegister(t *testing.T) {
	cases := []struct {
		name string
		in   validate.RegisterInput
		want string
	}{
		{"ok", validate.RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "secret1"}, ""},
		{"ok con rol", validate.RegisterInput{Email: "a@b.co", Password: "secret1", Role: "Administrator"}, ""},
		{"email vacío", validate.RegisterInput{Password: "secret1"}, "El email es inválido o está vacío."},
		{"email malo", validate.RegisterInput{Email: "no-es-email", Password: "secret1"}, "El email es inválido o está vacío."},
		{"password corto", validate.RegisterInput{Email: "a@b.co", Password: "12345"}, "La contraseña debe tener al menos 6 caracteres."},
		{"rol desconocido", validate.RegisterInput{Email: "a@b.co", Password: "secret1", Role: "root"},
			"El rol debe ser 'Administrator' o 'Customer'."},
		{"todo mal", validate.RegisterInput{Email: "x", Password: "1"},
			"El email es inválido o está vacío. La contraseña debe tener al menos 6 caracteres."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, validate.Register(&c.in))
		})
	}
}

func TestLogin(t *testing.T) {
	assert.Empty(t, validate.Login(&validate.LoginInput{Email: "a@b.co", Password: "x"}))
	assert.Equal(t, "El email es inválido o está vacío. La contraseña es requerida.",
		validate.Login(&validate.LoginInput{}))
	assert.Equal(t, "La contraseña es requerida.",
		validate.Login(&validate.LoginInput{Email: "a@b.co"}))
}

func TestProduct(t *testing.T) {
	ok := validate.ProductInput{
		LotNumber:  ptr("L1"),
		Name:       ptr("Café"),
		Price:      ptr(0.0), // 0 permitido
		Quantity:   ptr(0.0),
		IntakeDate: ptr("2024-01-15"),
	}
	assert.Empty(t, validate.Product(&ok))

	empty := validate.ProductInput{}
	got := validate.Product(&empty)
	assert.Contains(t, got, "El número de lote es obligatorio.")
	assert.Contains(t, got, "El nombre del producto es obligatorio.")
	assert.Contains(t, got, "El precio debe ser un número mayor o igual a 0.")
	assert.Contains(t, got, "La cantidad disponible debe ser un número mayor o igual a 0.")
	assert.Contains(t, got, "La fecha de ingreso no es válida.")

	// 数量必须是整数
	frac := ok
	frac.Quantity = ptr(1.5)
	assert.Equal(t, "La cantidad disponible debe ser un número mayor o igual a 0.", validate.Product(&frac))

	badDate := ok
	badDate.IntakeDate = ptr("15/01/2024")
	assert.Equal(t, "La fecha de ingreso no es válida.", validate.Product(&badDate))
}

func TestProductUpdate(t *testing.T) {
	// 不提供任何字段也算通过，按提供的字段各自校验
	assert.Empty(t, validate.ProductUpdate(&validate.ProductInput{}))
	assert.Empty(t, validate.ProductUpdate(&validate.ProductInput{Price: ptr(9.99)}))

	assert.Equal(t, "El número de lote es obligatorio.",
		validate.ProductUpdate(&validate.ProductInput{LotNumber: ptr("  ")}))
	assert.Equal(t, "El precio debe ser un número mayor o igual a 0.",
		validate.ProductUpdate(&validate.ProductInput{Price: ptr(-0.01)}))
	assert.Equal(t, "La cantidad disponible debe ser un número mayor o igual a 0.",
		validate.ProductUpdate(&validate.ProductInput{Quantity: ptr(2.5)}))
}

func TestPurchase(t *testing.T) {
	assert.Equal(t, "Debe agregar al menos un producto a la compra.",
		validate.Purchase(&validate.PurchaseInput{}))

	assert.Empty(t, validate.Purchase(&validate.PurchaseInput{
		Items: []validate.PurchaseItem{{ProductID: 1, Quantity: 2}},
	}))

	// 超出 int32 的数字：转 int 会溢出，必须在这里拒绝
	assert.Equal(t, "La cantidad del producto #1 debe ser al menos 1.",
		validate.Purchase(&validate.PurchaseInput{
			Items: []validate.PurchaseItem{{ProductID: 1, Quantity: 1e19}},
		}))
	assert.Equal(t, "El producto #1 no tiene un ID válido.",
		validate.Purchase(&validate.PurchaseInput{
			Items: []validate.PurchaseItem{{ProductID: 1e19, Quantity: 1}},
		}))

	// 序号从 1 开始，逐条报错
	got := validate.Purchase(&validate.PurchaseInput{
		Items: []validate.PurchaseItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 0, Quantity: 0},
			{ProductID: 2.5, Quantity: 1.5},
		},
	})
	assert.Equal(t,
		"El producto #2 no tiene un ID válido. La cantidad del producto #2 debe ser al menos 1. "+
			"El producto #3 no tiene un ID válido. La cantidad del producto #3 debe ser al menos 1.",
		got)
}

func TestParseDate(t *testing.T) {
	d, err := validate.ParseDate("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = validate.ParseDate("2024-13-40")
	assert.Error(t, err)
}
