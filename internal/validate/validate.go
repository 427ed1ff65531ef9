package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/jmontero22c/BRM-Backend/internal/domain"
)

// 纯校验：入参 DTO → 违规信息（空串表示通过），不做任何 I/O
// 文案对外可见，保持稳定

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProductInput 字段用指针区分“未提供”和“零值”，更新时按提供的字段校验
type ProductInput struct {
	LotNumber  *string  `json:"lotNumber"`
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Quantity   *float64 `json:"quantity"`
	IntakeDate *string  `json:"intakeDate"`
}

type PurchaseItem struct {
	ProductID float64 `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

type PurchaseInput struct {
	Items []PurchaseItem `json:"items"`
}

const dateLayout = "2006-01-02"

func Register(in *RegisterInput) string {
	var errs []string
	if in.Email == "" || !emailRe.MatchString(in.Email) {
		errs = append(errs, "El email es inválido o está vacío.")
	}
	if len(in.Password) < 6 {
		errs = append(errs, "La contraseña debe tener al menos 6 caracteres.")
	}
	if in.Role != "" && !domain.Role(in.Role).Valid() {
		errs = append(errs, fmt.Sprintf("El rol debe ser '%s' o '%s'.",
			domain.RoleAdministrator, domain.RoleCustomer))
	}
	return strings.Join(errs, " ")
}

func Login(in *LoginInput) string {
	var errs []string
	if in.Email == "" || !emailRe.MatchString(in.Email) {
		errs = append(errs, "El email es inválido o está vacío.")
	}
	if in.Password == "" {
		errs = append(errs, "La contraseña es requerida.")
	}
	return strings.Join(errs, " ")
}

// Product 创建：所有字段必填
func Product(in *ProductInput) string {
	var errs []string
	if in.LotNumber == nil || strings.TrimSpace(*in.LotNumber) == "" {
		errs = append(errs, "El número de lote es obligatorio.")
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, "El nombre del producto es obligatorio.")
	}
	if in.Price == nil || *in.Price < 0 {
		errs = append(errs, "El precio debe ser un número mayor o igual a 0.")
	}
	if in.Quantity == nil || *in.Quantity < 0 || !isInt(*in.Quantity) {
		errs = append(errs, "La cantidad disponible debe ser un número mayor o igual a 0.")
	}
	if in.IntakeDate == nil || !validDate(*in.IntakeDate) {
		errs = append(errs, "La fecha de ingreso no es válida.")
	}
	return strings.Join(errs, " ")
}

// ProductUpdate 部分更新：只校验提供的字段
func ProductUpdate(in *ProductInput) string {
	var errs []string
	if in.LotNumber != nil && strings.TrimSpace(*in.LotNumber) == "" {
		errs = append(errs, "El número de lote es obligatorio.")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, "El nombre del producto es obligatorio.")
	}
	if in.Price != nil && *in.Price < 0 {
		errs = append(errs, "El precio debe ser un número mayor o igual a 0.")
	}
	if in.Quantity != nil && (*in.Quantity < 0 || !isInt(*in.Quantity)) {
		errs = append(errs, "La cantidad disponible debe ser un número mayor o igual a 0.")
	}
	if in.IntakeDate != nil && !validDate(*in.IntakeDate) {
		errs = append(errs, "La fecha de ingreso no es válida.")
	}
	return strings.Join(errs, " ")
}

// JSON 数字是 float64，超过该界再转 int 会溢出（amd64 上变成大负数），
// 所以上界必须在校验层卡死
const maxItemValue = math.MaxInt32

// Purchase 每个条目的报错带 1 起始的序号
func Purchase(in *PurchaseInput) string {
	if len(in.Items) == 0 {
		return "Debe agregar al menos un producto a la compra."
	}
	var errs []string
	for i, item := range in.Items {
		if item.ProductID <= 0 || item.ProductID > maxItemValue || !isInt(item.ProductID) {
			errs = append(errs, fmt.Sprintf("El producto #%d no tiene un ID válido.", i+1))
		}
		if item.Quantity < 1 || item.Quantity > maxItemValue || !isInt(item.Quantity) {
			errs = append(errs, fmt.Sprintf("La cantidad del producto #%d debe ser al menos 1.", i+1))
		}
	}
	return strings.Join(errs, " ")
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func isInt(f float64) bool { return f == math.Trunc(f) }

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
